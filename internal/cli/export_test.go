package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"medpractice/doctor-dashboard/internal/domain"
)

func TestExportCommand_Stdout(t *testing.T) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"export"})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var ds domain.Dataset
	if err := json.Unmarshal(out.Bytes(), &ds); err != nil {
		t.Fatalf("output is not a dataset: %v\n%s", err, out.String())
	}
	if len(ds.Doctors) != 2 || len(ds.Patients) != 2 || len(ds.Appointments) != 2 || len(ds.Trainings) != 1 {
		t.Errorf("dataset = %+v", ds)
	}
}

func TestExportCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	root := NewRootCommand()
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"export", "--out", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !json.Valid(data) {
		t.Errorf("file is not valid JSON:\n%s", data)
	}
}
