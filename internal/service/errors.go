package service

import (
	"errors"

	"medpractice/doctor-dashboard/internal/repository"
)

// --- Error Definitions ---
var (
	// ErrInvalidCredentials is returned by Login for any password other than the demo password.
	ErrInvalidCredentials    = errors.New("Invalid credentials")
	ErrInvalidTrainingStatus = errors.New("training status can only move from Upcoming to Completed")
	ErrArchiveUnavailable    = errors.New("export archive storage is not configured")
)

// NotFoundError is returned when an update targets an id that does not exist.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return repository.ErrNotFound
}

// ParseError is returned by ImportData when the input is not a well-formed dataset.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid import data: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
