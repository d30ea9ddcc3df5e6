package domain

// Appointment links a patient and a doctor to a time slot.
// Start and End are local date-times in DateTimeLayout.
type Appointment struct {
	ID        int    `json:"id"`
	PatientID int    `json:"patientId"`
	DoctorID  int    `json:"doctorId"`
	Title     string `json:"title"`
	Start     string `json:"start"`
	End       string `json:"end"`
}
