package service

import (
	"context"
	"errors"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/repository"
)

// GetTrainings returns a copy of the training list in insertion order.
func (s *Store) GetTrainings(ctx context.Context) ([]domain.Training, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trainings.List(), nil
}

// AddTraining stores t under a fresh id. New trainings always start Upcoming.
func (s *Store) AddTraining(ctx context.Context, t domain.Training) (domain.Training, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Training{}, err
	}

	s.mu.Lock()
	t.ID = s.trainings.NextID()
	t.Status = domain.TrainingUpcoming
	s.trainings.Append(t)
	s.mu.Unlock()

	s.notify()
	return t, nil
}

// UpdateTraining merges u into the training with the given id. A status change other
// than Upcoming to Completed is rejected with ErrInvalidTrainingStatus.
func (s *Store) UpdateTraining(ctx context.Context, id int, u domain.TrainingUpdate) (domain.Training, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Training{}, err
	}

	s.mu.Lock()
	existing, err := s.trainings.Get(id)
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, repository.ErrNotFound) {
			return domain.Training{}, &NotFoundError{Entity: "Training", ID: id}
		}
		return domain.Training{}, err
	}
	if u.Status != nil && !existing.Status.CanTransition(*u.Status) {
		s.mu.Unlock()
		return domain.Training{}, ErrInvalidTrainingStatus
	}
	updated := u.Apply(existing)
	err = s.trainings.Replace(id, updated)
	s.mu.Unlock()
	if err != nil {
		return domain.Training{}, err
	}

	s.notify()
	return updated, nil
}

// CompleteTraining marks a training as Completed.
func (s *Store) CompleteTraining(ctx context.Context, id int) (domain.Training, error) {
	completed := domain.TrainingCompleted
	return s.UpdateTraining(ctx, id, domain.TrainingUpdate{Status: &completed})
}
