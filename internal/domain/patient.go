package domain

// PatientStatus is a treatment state. Recovered and In Operation are the two
// states the dashboard counts; anything else is free text ("Under Treatment", ...).
type PatientStatus string

const (
	StatusRecovered   PatientStatus = "Recovered"
	StatusInOperation PatientStatus = "In Operation"
)

// Patient is a single patient record.
type Patient struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        string        `json:"gender"`
	Condition     string        `json:"condition"`
	Status        PatientStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
	AdmissionDate string        `json:"admissionDate"` // YYYY-MM-DD
	DoctorID      *int          `json:"doctorId"`      // nil when unassigned
}

// Clone returns a copy that shares no memory with p.
func (p Patient) Clone() Patient {
	p.DoctorID = cloneIntPtr(p.DoctorID)
	return p
}

// PatientUpdate carries the fields of a partial update. Nil fields are left untouched.
type PatientUpdate struct {
	Name          *string        `json:"name,omitempty"`
	Age           *int           `json:"age,omitempty"`
	Gender        *string        `json:"gender,omitempty"`
	Condition     *string        `json:"condition,omitempty"`
	Status        *PatientStatus `json:"status,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	AdmissionDate *string        `json:"admissionDate,omitempty"`
	DoctorID      OptionalID     `json:"doctorId"`
}

// Apply merges u over p and returns the result. p itself is not modified.
func (u PatientUpdate) Apply(p Patient) Patient {
	out := p.Clone()
	if u.Name != nil {
		out.Name = *u.Name
	}
	if u.Age != nil {
		out.Age = *u.Age
	}
	if u.Gender != nil {
		out.Gender = *u.Gender
	}
	if u.Condition != nil {
		out.Condition = *u.Condition
	}
	if u.Status != nil {
		out.Status = *u.Status
	}
	if u.Notes != nil {
		out.Notes = *u.Notes
	}
	if u.AdmissionDate != nil {
		out.AdmissionDate = *u.AdmissionDate
	}
	if u.DoctorID.Set {
		out.DoctorID = cloneIntPtr(u.DoctorID.Value)
	}
	return out
}
