package service

import (
	"encoding/json"
	"log"

	"medpractice/doctor-dashboard/internal/domain"
)

// importPayload uses pointers so that a collection missing from the input
// can be told apart from an empty one.
type importPayload struct {
	Doctors      *[]domain.Doctor      `json:"doctors"`
	Patients     *[]domain.Patient     `json:"patients"`
	Appointments *[]domain.Appointment `json:"appointments"`
	Trainings    *[]domain.Training    `json:"trainings"`
}

// Snapshot returns a copy of the whole dataset.
func (s *Store) Snapshot() domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Dataset{
		Doctors:      s.doctors.List(),
		Patients:     s.patients.List(),
		Appointments: s.appointments.List(),
		Trainings:    s.trainings.List(),
	}
}

// ExportData serialises the whole dataset as indented JSON.
func (s *Store) ExportData() ([]byte, error) {
	return json.MarshalIndent(s.Snapshot(), "", "  ")
}

// ImportData merges an exported dataset over the current one. Every collection present
// in data replaces the existing collection; absent (or null) collections and unknown
// keys are ignored. Nothing is applied unless the whole input parses.
func (s *Store) ImportData(data []byte) error {
	var in importPayload
	if err := json.Unmarshal(data, &in); err != nil {
		return &ParseError{Err: err}
	}

	replaced := 0
	s.mu.Lock()
	if in.Doctors != nil {
		s.doctors.Reset(*in.Doctors)
		replaced++
	}
	if in.Patients != nil {
		s.patients.Reset(*in.Patients)
		replaced++
	}
	if in.Appointments != nil {
		s.appointments.Reset(*in.Appointments)
		replaced++
	}
	if in.Trainings != nil {
		s.trainings.Reset(*in.Trainings)
		replaced++
	}
	s.mu.Unlock()

	log.Printf("INFO: Imported dataset, %d collection(s) replaced", replaced)
	s.notify()
	return nil
}
