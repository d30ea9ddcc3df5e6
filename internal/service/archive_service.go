package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/storage"
)

const exportContentType = "application/json"

// ArchiveService uploads export snapshots to object storage.
type ArchiveService interface {
	ArchiveExport(ctx context.Context) (*domain.ExportArchive, error)
}

type archiveService struct {
	store   *Store
	files   storage.FileStorage
	expires time.Duration
	now     func() time.Time
}

// NewArchiveService creates an ArchiveService. files may be nil, in which case
// every call fails with ErrArchiveUnavailable.
func NewArchiveService(store *Store, files storage.FileStorage, expires time.Duration) ArchiveService {
	if expires <= 0 {
		expires = storage.DefaultPresignedURLExpiry
	}
	return &archiveService{
		store:   store,
		files:   files,
		expires: expires,
		now:     time.Now,
	}
}

// ArchiveExport exports the current dataset, uploads it and returns a download link.
func (s *archiveService) ArchiveExport(ctx context.Context) (*domain.ExportArchive, error) {
	if s.files == nil {
		return nil, ErrArchiveUnavailable
	}

	data, err := s.store.ExportData()
	if err != nil {
		return nil, fmt.Errorf("export dataset: %w", err)
	}

	now := s.now().UTC()
	objectKey := fmt.Sprintf("exports/%s/doctor-dashboard-data-%s.json", now.Format(domain.DateLayout), uuid.NewString())

	if err := s.files.PutObject(ctx, objectKey, exportContentType, data); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.files.GeneratePresignedDownloadURL(ctx, objectKey, s.expires)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}

	log.Printf("INFO: Archived export %s (%d bytes)", objectKey, len(data))
	return &domain.ExportArchive{
		Key:         objectKey,
		DownloadURL: url,
		Size:        len(data),
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.expires),
	}, nil
}
