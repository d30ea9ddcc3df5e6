package memory

import "medpractice/doctor-dashboard/internal/domain"

// Seed returns the demo dataset the dashboard starts with.
func Seed() domain.Dataset {
	doctor1, doctor2 := 1, 2
	return domain.Dataset{
		Doctors: []domain.Doctor{
			{ID: 1, Name: "Dr. Alice", Specialty: "Cardiology"},
			{ID: 2, Name: "Dr. Bob", Specialty: "Neurology"},
		},
		Patients: []domain.Patient{
			{
				ID:            1,
				Name:          "John Doe",
				Age:           45,
				Gender:        "Male",
				Condition:     "Hypertension",
				Status:        domain.StatusRecovered,
				Notes:         "Stable",
				AdmissionDate: "2025-07-15",
				DoctorID:      &doctor1,
			},
			{
				ID:            2,
				Name:          "Jane Smith",
				Age:           60,
				Gender:        "Female",
				Condition:     "Stroke",
				Status:        domain.StatusInOperation,
				Notes:         "Under observation",
				AdmissionDate: "2025-07-20",
				DoctorID:      &doctor2,
			},
		},
		Appointments: []domain.Appointment{
			{ID: 1, PatientID: 1, DoctorID: 1, Title: "Follow-up", Start: "2025-07-25T09:00", End: "2025-07-25T09:30"},
			{ID: 2, PatientID: 2, DoctorID: 2, Title: "Consultation", Start: "2025-07-26T10:00", End: "2025-07-26T10:30"},
		},
		Trainings: []domain.Training{
			{ID: 1, Topic: "Medical Training with Dr. Richard", Date: "2025-08-01", Status: domain.TrainingUpcoming},
		},
	}
}
