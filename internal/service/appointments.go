package service

import (
	"context"

	"medpractice/doctor-dashboard/internal/domain"
)

// GetAppointments returns a copy of the appointment list in insertion order.
func (s *Store) GetAppointments(ctx context.Context) ([]domain.Appointment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.appointments.List(), nil
}

// AddAppointment stores a under a fresh id. End is kept as supplied; when it is
// empty the appointment is treated as an instant and End takes the value of Start.
// Patient and doctor references are not checked.
func (s *Store) AddAppointment(ctx context.Context, a domain.Appointment) (domain.Appointment, error) {
	if err := s.wait(ctx); err != nil {
		return domain.Appointment{}, err
	}
	if a.End == "" {
		a.End = a.Start
	}

	s.mu.Lock()
	a.ID = s.appointments.NextID()
	s.appointments.Append(a)
	s.mu.Unlock()

	s.notify()
	return a, nil
}

// DeleteAppointment removes every appointment with the given id. Appointments have
// no update operation; reschedule by deleting and adding.
func (s *Store) DeleteAppointment(ctx context.Context, id int) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.appointments.RemoveAll(id)
	s.mu.Unlock()

	s.notify()
	return nil
}
