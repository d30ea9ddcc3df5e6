package service_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"medpractice/doctor-dashboard/internal/domain"
	"medpractice/doctor-dashboard/internal/repository"
	"medpractice/doctor-dashboard/internal/service"
)

var fixedNow = time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *service.Store {
	t.Helper()
	return newTestStoreWith(t, service.Options{})
}

func newTestStoreWith(t *testing.T, opts service.Options) *service.Store {
	t.Helper()
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return fixedNow }
	}
	opts.BcryptCost = bcrypt.MinCost
	store, err := service.NewStore(opts)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func mustPatients(t *testing.T, s *service.Store) []domain.Patient {
	t.Helper()
	patients, err := s.GetPatients(context.Background())
	if err != nil {
		t.Fatalf("get patients: %v", err)
	}
	return patients
}

// ============================================================================
// Patients
// ============================================================================

func TestAddPatient_OverwritesIDAndAdmissionDate(t *testing.T) {
	s := newTestStore(t)
	doctor := 2

	got, err := s.AddPatient(context.Background(), domain.Patient{
		ID:            99,
		Name:          "Ana Lima",
		Age:           33,
		Status:        "Under Treatment",
		AdmissionDate: "1999-01-01",
		DoctorID:      &doctor,
	})
	if err != nil {
		t.Fatalf("add patient: %v", err)
	}
	if got.ID != 3 {
		t.Errorf("ID = %d, want 3", got.ID)
	}
	if got.AdmissionDate != "2026-03-14" {
		t.Errorf("AdmissionDate = %q, want 2026-03-14", got.AdmissionDate)
	}

	patients := mustPatients(t, s)
	if len(patients) != 3 || patients[2].Name != "Ana Lima" {
		t.Fatalf("patients = %+v", patients)
	}
}

func TestAdd_IdentifiersStrictlyIncrease(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	last := 0
	for i := 0; i < 5; i++ {
		p, err := s.AddPatient(ctx, domain.Patient{Name: "p"})
		if err != nil {
			t.Fatalf("add patient: %v", err)
		}
		if p.ID <= last {
			t.Fatalf("patient id %d not greater than %d", p.ID, last)
		}
		last = p.ID
	}

	last = 0
	for i := 0; i < 5; i++ {
		a, err := s.AddAppointment(ctx, domain.Appointment{Title: "a", Start: "2025-08-01T09:00"})
		if err != nil {
			t.Fatalf("add appointment: %v", err)
		}
		if a.ID <= last {
			t.Fatalf("appointment id %d not greater than %d", a.ID, last)
		}
		last = a.ID
	}

	last = 0
	for i := 0; i < 5; i++ {
		tr, err := s.AddTraining(ctx, domain.Training{Topic: "t"})
		if err != nil {
			t.Fatalf("add training: %v", err)
		}
		if tr.ID <= last {
			t.Fatalf("training id %d not greater than %d", tr.ID, last)
		}
		last = tr.ID
	}
}

func TestAddPatient_ReusesIDAfterDeletingMax(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.DeletePatient(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	p, err := s.AddPatient(ctx, domain.Patient{Name: "new"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.ID != 2 {
		t.Errorf("ID = %d, want 2 (max remaining + 1)", p.ID)
	}
}

func TestUpdatePatient_ChangesOnlyNamedFields(t *testing.T) {
	s := newTestStore(t)
	before := mustPatients(t, s)

	status := domain.PatientStatus("Under Treatment")
	notes := "Moved to ward B"
	got, err := s.UpdatePatient(context.Background(), 1, domain.PatientUpdate{Status: &status, Notes: &notes})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := before[0].Clone()
	want.Status = status
	want.Notes = notes
	if !reflect.DeepEqual(got, want) {
		t.Errorf("returned %+v, want %+v", got, want)
	}

	after := mustPatients(t, s)
	if !reflect.DeepEqual(after[0], want) {
		t.Errorf("stored %+v, want %+v", after[0], want)
	}
	if !reflect.DeepEqual(after[1], before[1]) {
		t.Errorf("other patient changed: %+v", after[1])
	}
}

func TestUpdatePatient_ClearsDoctor(t *testing.T) {
	s := newTestStore(t)
	got, err := s.UpdatePatient(context.Background(), 2, domain.PatientUpdate{DoctorID: domain.NullID()})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.DoctorID != nil {
		t.Errorf("DoctorID = %d, want nil", *got.DoctorID)
	}
}

func TestUpdatePatient_NotFound(t *testing.T) {
	s := newTestStore(t)
	before := mustPatients(t, s)
	calls := 0
	s.AddListener(func() { calls++ })

	name := "ghost"
	_, err := s.UpdatePatient(context.Background(), 42, domain.PatientUpdate{Name: &name})

	var notFound *service.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
	if err.Error() != "Patient not found" {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, repository.ErrNotFound) {
		t.Error("NotFoundError should wrap repository.ErrNotFound")
	}
	if !reflect.DeepEqual(mustPatients(t, s), before) {
		t.Error("collection changed after failed update")
	}
	if calls != 0 {
		t.Errorf("listener called %d times on failure", calls)
	}
}

func TestDeletePatient_RemovesExactlyOne(t *testing.T) {
	s := newTestStore(t)
	before := mustPatients(t, s)

	if err := s.DeletePatient(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	after := mustPatients(t, s)
	if len(after) != 1 || !reflect.DeepEqual(after[0], before[1]) {
		t.Fatalf("after delete = %+v", after)
	}
}

func TestDeletePatient_MissingIsNoOp(t *testing.T) {
	s := newTestStore(t)
	before := mustPatients(t, s)
	calls := 0
	s.AddListener(func() { calls++ })

	if err := s.DeletePatient(context.Background(), 99); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if !reflect.DeepEqual(mustPatients(t, s), before) {
		t.Error("collection changed")
	}
	if calls != 1 {
		t.Errorf("listener calls = %d, want 1 (delete always notifies)", calls)
	}
}

func TestGetPatients_ReturnsDefensiveCopy(t *testing.T) {
	s := newTestStore(t)
	list := mustPatients(t, s)
	list[0].Name = "changed"
	*list[0].DoctorID = 77

	again := mustPatients(t, s)
	if len(again) != 2 || again[0].Name != "John Doe" || *again[0].DoctorID != 1 {
		t.Fatalf("store modified through copy: %+v", again)
	}
}

func TestFilterAndSearchPatients(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	all, err := s.FilterPatients(ctx, service.StatusFilterAll)
	if err != nil || len(all) != 2 {
		t.Fatalf("filter all = %v, %v", all, err)
	}
	recovered, _ := s.FilterPatients(ctx, "Recovered")
	if len(recovered) != 1 || recovered[0].Name != "John Doe" {
		t.Errorf("filter Recovered = %+v", recovered)
	}
	none, _ := s.FilterPatients(ctx, "Discharged")
	if len(none) != 0 {
		t.Errorf("filter Discharged = %+v", none)
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"jo", []string{"John Doe"}},
		{"STROKE", []string{"Jane Smith"}},
		{"  ", nil},
		{"zzz", nil},
	}
	for _, tt := range tests {
		got, err := s.SearchPatients(ctx, tt.query)
		if err != nil {
			t.Fatalf("search %q: %v", tt.query, err)
		}
		var names []string
		for _, p := range got {
			names = append(names, p.Name)
		}
		if !reflect.DeepEqual(names, tt.want) {
			t.Errorf("search %q = %v, want %v", tt.query, names, tt.want)
		}
	}
}

// ============================================================================
// Appointments
// ============================================================================

func TestAddAppointment_EndTime(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	withEnd, err := s.AddAppointment(ctx, domain.Appointment{PatientID: 1, DoctorID: 1, Title: "Check", Start: "2025-08-02T09:00", End: "2025-08-02T09:45"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if withEnd.ID != 3 || withEnd.End != "2025-08-02T09:45" {
		t.Errorf("appointment = %+v", withEnd)
	}

	instant, _ := s.AddAppointment(ctx, domain.Appointment{Title: "Call", Start: "2025-08-03T11:00"})
	if instant.End != instant.Start {
		t.Errorf("End = %q, want Start %q", instant.End, instant.Start)
	}
}

func TestDeleteAppointment(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.DeleteAppointment(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteAppointment(ctx, 1); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	got, _ := s.GetAppointments(ctx)
	if len(got) != 1 || got[0].ID != 2 || got[0].Title != "Consultation" {
		t.Fatalf("appointments = %+v", got)
	}
}

// ============================================================================
// Trainings
// ============================================================================

func TestAddTraining_ForcesUpcoming(t *testing.T) {
	s := newTestStore(t)
	got, err := s.AddTraining(context.Background(), domain.Training{Topic: "CPR refresher", Date: "2025-09-01", Status: domain.TrainingCompleted})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got.ID != 2 || got.Status != domain.TrainingUpcoming {
		t.Errorf("training = %+v", got)
	}
}

func TestCompleteTraining(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	got, err := s.CompleteTraining(ctx, 1)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Status != domain.TrainingCompleted || got.Topic != "Medical Training with Dr. Richard" {
		t.Errorf("training = %+v", got)
	}

	// Completing again is harmless.
	if _, err := s.CompleteTraining(ctx, 1); err != nil {
		t.Errorf("complete twice: %v", err)
	}
}

func TestUpdateTraining_CannotReopen(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if _, err := s.CompleteTraining(ctx, 1); err != nil {
		t.Fatalf("complete: %v", err)
	}

	upcoming := domain.TrainingUpcoming
	topic := "renamed"
	_, err := s.UpdateTraining(ctx, 1, domain.TrainingUpdate{Status: &upcoming, Topic: &topic})
	if !errors.Is(err, service.ErrInvalidTrainingStatus) {
		t.Fatalf("error = %v, want ErrInvalidTrainingStatus", err)
	}
	trainings, _ := s.GetTrainings(ctx)
	if trainings[0].Status != domain.TrainingCompleted || trainings[0].Topic == topic {
		t.Errorf("training changed after rejected update: %+v", trainings[0])
	}
}

func TestUpdateTraining_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CompleteTraining(context.Background(), 8)
	var notFound *service.NotFoundError
	if !errors.As(err, &notFound) || notFound.ID != 8 {
		t.Fatalf("error = %v, want NotFoundError for 8", err)
	}
	if err.Error() != "Training not found" {
		t.Errorf("message = %q", err.Error())
	}
}

// ============================================================================
// Session
// ============================================================================

func TestLogin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Login(ctx, "x@y.com", "wrong"); !errors.Is(err, service.ErrInvalidCredentials) {
		t.Fatalf("wrong password error = %v", err)
	}
	if s.CurrentUser() != nil {
		t.Fatal("session set after failed login")
	}

	res, err := s.Login(ctx, "x@y.com", "password")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	want := domain.User{ID: 1, Name: "Dr. Alice", Email: "x@y.com"}
	if res.Token != service.DefaultToken || res.User != want {
		t.Errorf("login result = %+v", res)
	}
	if u := s.CurrentUser(); u == nil || *u != want {
		t.Errorf("CurrentUser() = %v", u)
	}
}

func TestLogin_ErrorMessage(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Login(context.Background(), "", "")
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("error = %v", err)
	}
}

func TestLogin_RejectsNearMatches(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	variants := []string{
		"password\x00",
		"password\x00password",
		strings.Repeat("password\x00", 8),
		"password ",
		"Password",
		"passwor",
	}
	for _, pw := range variants {
		if _, err := s.Login(ctx, "x@y.com", pw); !errors.Is(err, service.ErrInvalidCredentials) {
			t.Errorf("Login(%q) error = %v, want ErrInvalidCredentials", pw, err)
		}
		if u := s.CurrentUser(); u != nil {
			t.Fatalf("Login(%q) opened a session: %+v", pw, u)
		}
	}
}

func TestLogin_ConfiguredPasswordAndToken(t *testing.T) {
	s := newTestStoreWith(t, service.Options{DemoPassword: "s3cret", Token: "fixed"})
	if _, err := s.Login(context.Background(), "a@b.c", "password"); err == nil {
		t.Fatal("default password accepted after override")
	}
	res, err := s.Login(context.Background(), "a@b.c", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token != "fixed" {
		t.Errorf("token = %q", res.Token)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	s := newTestStore(t)
	s.Logout()
	if _, err := s.Login(context.Background(), "x@y.com", "password"); err != nil {
		t.Fatalf("login: %v", err)
	}
	s.Logout()
	s.Logout()
	if s.CurrentUser() != nil {
		t.Fatal("session still set after logout")
	}
}

// ============================================================================
// Statistics
// ============================================================================

func TestGetStatistics_Seed(t *testing.T) {
	s := newTestStore(t)
	stats := s.GetStatistics()
	if stats.TotalPatients != 2 || stats.Recovered != 1 || stats.Operation != 1 || stats.UnderTreatment != 0 {
		t.Errorf("stats = %+v", stats)
	}
	want := []int{20, 25, 18, 30, 28, 22, 27, 35, 31, 29, 26, 24}
	if !reflect.DeepEqual(stats.MonthlyAdmissions, want) {
		t.Errorf("monthly = %v", stats.MonthlyAdmissions)
	}

	// The series is a copy.
	stats.MonthlyAdmissions[0] = 0
	if s.GetStatistics().MonthlyAdmissions[0] != 20 {
		t.Error("monthly admissions series shared between calls")
	}
}

func TestGetStatistics_TracksMutations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if _, err := s.AddPatient(ctx, domain.Patient{Name: "x", Status: "Under Treatment"}); err != nil {
		t.Fatal(err)
	}
	if err := s.DeletePatient(ctx, 1); err != nil {
		t.Fatal(err)
	}
	stats := s.GetStatistics()
	if stats.TotalPatients != 2 || stats.Recovered != 0 || stats.Operation != 1 || stats.UnderTreatment != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

// ============================================================================
// Latency and concurrency
// ============================================================================

func TestLatency_IsApplied(t *testing.T) {
	s := newTestStoreWith(t, service.Options{Latency: 20 * time.Millisecond})
	start := time.Now()
	if _, err := s.GetTrainings(context.Background()); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("call returned after %v, want at least 20ms", elapsed)
	}
}

func TestLatency_CancelledContextLeavesStateUntouched(t *testing.T) {
	s := newTestStoreWith(t, service.Options{Latency: time.Hour})
	calls := 0
	s.AddListener(func() { calls++ })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.AddPatient(ctx, domain.Patient{Name: "late"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if s.GetStatistics().TotalPatients != 2 {
		t.Error("patient added despite cancellation")
	}
	if calls != 0 {
		t.Errorf("listener called %d times", calls)
	}
}

func TestNewStore_RejectsNegativeLatency(t *testing.T) {
	if _, err := service.NewStore(service.Options{Latency: -time.Second, BcryptCost: bcrypt.MinCost}); err == nil {
		t.Fatal("expected error for negative latency")
	}
}

func TestConcurrentAdds_ProduceUniqueIDs(t *testing.T) {
	s := newTestStoreWith(t, service.Options{Latency: time.Millisecond})
	const n = 50

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.AddPatient(context.Background(), domain.Patient{Name: "c"}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent add: %v", err)
	}

	patients := mustPatients(t, s)
	if len(patients) != n+2 {
		t.Fatalf("len = %d, want %d", len(patients), n+2)
	}
	for i := 1; i < len(patients); i++ {
		if patients[i].ID <= patients[i-1].ID {
			t.Fatalf("ids not strictly increasing at %d: %d after %d", i, patients[i].ID, patients[i-1].ID)
		}
	}
}
