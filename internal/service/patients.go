package service

import (
	"context"
	"errors"
	"strings"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/repository"
)

// StatusFilterAll selects every patient in FilterPatients.
const StatusFilterAll = "all"

// GetPatients returns a copy of the patient list in insertion order.
func (s *Store) GetPatients(ctx context.Context) ([]domain.Patient, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patients.List(), nil
}

// AddPatient stores p under a fresh id with today's admission date.
// Any id or admission date set by the caller is overwritten.
func (s *Store) AddPatient(ctx context.Context, p domain.Patient) (domain.Patient, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Patient{}, err
	}

	s.mu.Lock()
	p.ID = s.patients.NextID()
	p.AdmissionDate = s.now().Format(domain.DateLayout)
	s.patients.Append(p)
	s.mu.Unlock()

	s.notify()
	return p.Clone(), nil
}

// UpdatePatient merges u into the patient with the given id.
func (s *Store) UpdatePatient(ctx context.Context, id int, u domain.PatientUpdate) (domain.Patient, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Patient{}, err
	}

	s.mu.Lock()
	existing, err := s.patients.Get(id)
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Patient{}, &NotFoundError{Entity: "Patient", ID: id}
		}
		return domain.Patient{}, err
	}
	updated := u.Apply(existing)
	updated.ID = id
	err = s.patients.Replace(id, updated)
	s.mu.Unlock()
	if err != nil {
		return domain.Patient{}, err
	}

	s.notify()
	return updated, nil
}

// DeletePatient removes every patient with the given id. Deleting an unknown id is not
// an error, and listeners are notified either way.
func (s *Store) DeletePatient(ctx context.Context, id int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.patients.RemoveAll(id)
	s.mu.Unlock()

	s.notify()
	return nil
}

// FilterPatients returns the patients with the given status; "all" or "" returns everyone.
func (s *Store) FilterPatients(ctx context.Context, status string) ([]domain.Patient, error) {
	all, err := s.GetPatients(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" || status == StatusFilterAll {
		return all, nil
	}
	out := make([]domain.Patient, 0, len(all))
	for _, p := range all {
		if string(p.Status) == status {
			out = append(out, p)
		}
	}
	return out, nil
}

// SearchPatients matches query case-insensitively against name and condition.
// An empty query matches nothing.
func (s *Store) SearchPatients(ctx context.Context, query string) ([]domain.Patient, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []domain.Patient{}, nil
	}
	all, err := s.GetPatients(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Patient, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Condition), q) {
			out = append(out, p)
		}
	}
	return out, nil
}
