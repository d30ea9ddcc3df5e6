package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/repository"
	"medpractice/doctor-dashboard/internal/repository/memory"
)

const (
	DefaultLatency      = 100 * time.Millisecond
	DefaultDemoPassword = "password"
	DefaultToken        = "mock-jwt-token"
)

// Options configures a Store. The zero value is usable: no latency, the wall clock,
// the demo password and token, and the built-in seed dataset.
type Options struct {
	// Latency is the simulated round-trip applied before every asynchronous operation.
	Latency time.Duration
	Clock   func() time.Time
	// DemoPassword is the only password Login accepts.
	DemoPassword string
	// BcryptCost is used to hash DemoPassword at construction. Zero means bcrypt.DefaultCost.
	BcryptCost int
	Token      string
	Seed       *domain.Dataset
}

// Store is the single source of truth for the dashboard. Every mutating operation
// notifies the registered listeners once it has been applied.
type Store struct {
	mu           sync.RWMutex
	doctors      repository.Collection[domain.Doctor]
	patients     repository.Collection[domain.Patient]
	appointments repository.Collection[domain.Appointment]
	trainings    repository.Collection[domain.Training]
	session      *domain.User

	listeners *listenerRegistry

	latency      time.Duration
	now          func() time.Time
	passwordHash []byte

	// passwordDigest guards the exact demo password; bcrypt alone also accepts
	// NUL-padded and repeated variants of it.
	passwordDigest [sha256.Size]byte
	token          string
}

// NewStore builds a Store from opts.
func NewStore(opts Options) (*Store, error) {
	if opts.Latency < 0 {
		return nil, errors.New("latency cannot be negative")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.DemoPassword == "" {
		opts.DemoPassword = DefaultDemoPassword
	}
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	if opts.Token == "" {
		opts.Token = DefaultToken
	}
	seed := memory.Seed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.DemoPassword), opts.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &Store{
		doctors:        memory.NewDoctorCollection(seed.Doctors...),
		patients:       memory.NewPatientCollection(seed.Patients...),
		appointments:   memory.NewAppointmentCollection(seed.Appointments...),
		trainings:      memory.NewTrainingCollection(seed.Trainings...),
		listeners:      &listenerRegistry{},
		latency:        opts.Latency,
		now:            opts.Clock,
		passwordHash:   hash,
		passwordDigest: sha256.Sum256([]byte(opts.DemoPassword)),
		token:          opts.Token,
	}, nil
}

// wait simulates the round-trip to a remote data service.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AddListener registers fn to be called after every successful mutation.
func (s *Store) AddListener(fn func()) *Subscription {
	return s.listeners.add(fn)
}

// ListenerCount reports how many listeners are currently registered.
func (s *Store) ListenerCount() int {
	return s.listeners.count()
}

func (s *Store) notify() {
	s.listeners.notify()
}

// GetDoctors returns a copy of the doctor list.
func (s *Store) GetDoctors() []domain.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctors.List()
}
