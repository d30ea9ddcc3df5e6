package domain

// Dataset is the full exportable state of the dashboard, keyed by collection name.
type Dataset struct {
	Doctors      []Doctor      `json:"doctors"`
	Patients     []Patient     `json:"patients"`
	Appointments []Appointment `json:"appointments"`
	Trainings    []Training    `json:"trainings"`
}

// Statistics summarises the patient collection for the dashboard cards and charts.
type Statistics struct {
	TotalPatients     int   `json:"totalPatients"`
	Recovered         int   `json:"recovered"`
	Operation         int   `json:"operation"`
	UnderTreatment    int   `json:"underTreatment"`
	MonthlyAdmissions []int `json:"monthlyAdmissions"`
}

// CalendarEvent is one appointment rendered into a calendar cell.
type CalendarEvent struct {
	AppointmentID int    `json:"appointmentId"`
	Title         string `json:"title"`
	PatientName   string `json:"patientName"`
	Start         string `json:"start"`
	End           string `json:"end"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date    string          `json:"date"`
	InMonth bool            `json:"inMonth"`
	Events  []CalendarEvent `json:"events"`
}
