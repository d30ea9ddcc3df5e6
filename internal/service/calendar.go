package service

import (
	"context"
	"time"

	"medpractice/doctor-dashboard/internal/domain"
)

const (
	calendarCells = 42 // six weeks
	// UnknownPatientName labels events whose patient reference cannot be resolved.
	UnknownPatientName = "Unknown"
)

// Calendar lays out the appointments of the month containing month.
func (s *Store) Calendar(ctx context.Context, month time.Time) ([]domain.CalendarDay, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	appointments := s.appointments.List()
	patients := s.patients.List()
	s.mu.RUnlock()

	return MonthGrid(month, appointments, patients), nil
}

// MonthGrid returns a six-week grid that starts on the Sunday on or before the first
// of the month. Appointments whose start cannot be parsed are left out.
func MonthGrid(month time.Time, appointments []domain.Appointment, patients []domain.Patient) []domain.CalendarDay {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	names := make(map[int]string, len(patients))
	for _, p := range patients {
		if _, seen := names[p.ID]; !seen {
			names[p.ID] = p.Name
		}
	}

	byDay := make(map[string][]domain.CalendarEvent)
	for _, a := range appointments {
		at, err := domain.ParseDateTime(a.Start)
		if err != nil {
			continue
		}
		name, ok := names[a.PatientID]
		if !ok {
			name = UnknownPatientName
		}
		key := at.Format(domain.DateLayout)
		byDay[key] = append(byDay[key], domain.CalendarEvent{
			AppointmentID: a.ID,
			Title:         a.Title,
			PatientName:   name,
			Start:         a.Start,
			End:           a.End,
		})
	}

	days := make([]domain.CalendarDay, 0, calendarCells)
	for i := 0; i < calendarCells; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format(domain.DateLayout)
		events := byDay[key]
		if events == nil {
			events = []domain.CalendarEvent{}
		}
		days = append(days, domain.CalendarDay{
			Date:    key,
			InMonth: d.Month() == first.Month(),
			Events:  events,
		})
	}
	return days
}
