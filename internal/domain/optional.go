package domain

import (
	"encoding/json"
)

// OptionalID distinguishes "field absent" from "field explicitly null" in partial updates.
// Set is true whenever the key was present in the decoded JSON, even as null.
type OptionalID struct {
	Set   bool
	Value *int
}

// SomeID returns an OptionalID that assigns id.
func SomeID(id int) OptionalID {
	return OptionalID{Set: true, Value: &id}
}

// NullID returns an OptionalID that clears the reference.
func NullID() OptionalID {
	return OptionalID{Set: true}
}

func (o *OptionalID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
