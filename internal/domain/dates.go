package domain

import (
	"errors"
	"time"
)

// Layouts used for the plain-text dates stored on records.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04"
)

var dateTimeLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	DateLayout,
}

// ParseDateTime accepts the local date-time format used by the dashboard forms
// as well as a few looser variants found in imported files.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognised date-time: " + s)
}
