package domain

// TrainingStatus only ever moves from Upcoming to Completed.
type TrainingStatus string

const (
	TrainingUpcoming  TrainingStatus = "Upcoming"
	TrainingCompleted TrainingStatus = "Completed"
)

// CanTransition reports whether a training in status s may be moved to status to.
// Completed is terminal; nothing moves back to Upcoming.
func (s TrainingStatus) CanTransition(to TrainingStatus) bool {
	if to == s {
		return true
	}
	return to == TrainingCompleted
}

// Training is a scheduled staff training session.
type Training struct {
	ID     int            `json:"id"`
	Topic  string         `json:"topic"`
	Date   string         `json:"date"`
	Status TrainingStatus `json:"status"`
}

// TrainingUpdate carries the fields of a partial update. Nil fields are left untouched.
type TrainingUpdate struct {
	Topic  *string         `json:"topic,omitempty"`
	Date   *string         `json:"date,omitempty"`
	Status *TrainingStatus `json:"status,omitempty"`
}

// Apply merges u over t and returns the result.
func (u TrainingUpdate) Apply(t Training) Training {
	if u.Topic != nil {
		t.Topic = *u.Topic
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	return t
}
