package domain

import "time"

// ExportArchive describes an export snapshot uploaded to object storage.
type ExportArchive struct {
	Key         string    `json:"key"`
	DownloadURL string    `json:"downloadUrl"`
	Size        int       `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
