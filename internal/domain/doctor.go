package domain

// Doctor is read-only reference data. It is only ever replaced wholesale by an import.
type Doctor struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// UnknownDoctorName is shown when a patient references no doctor or a doctor that no longer exists.
const UnknownDoctorName = "N/A"

// DoctorName resolves a doctor reference against a list of doctors.
func DoctorName(doctors []Doctor, id *int) string {
	if id == nil {
		return UnknownDoctorName
	}
	for _, d := range doctors {
		if d.ID == *id {
			return d.Name
		}
	}
	return UnknownDoctorName
}
