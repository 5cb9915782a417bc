package app

import (
	"context"
	"testing"

	"github.com/pystart-cli/pystart/internal/config"
)

func findCheck(t *testing.T, report *DoctorReport, tool string) ToolCheck {
	t.Helper()
	for _, c := range report.Checks {
		if c.Tool == tool {
			return c
		}
	}
	t.Fatalf("report has no check for %q", tool)
	return ToolCheck{}
}

// TestDoctorAllHealthy tests a fully provisioned machine.
func TestDoctorAllHealthy(t *testing.T) {
	runner := newStubRunner()
	runner.stdout["python3"] = "Python 3.12.4\n"
	runner.stdout["uv"] = "uv 0.5.9\n"
	runner.stdout["git"] = "git version 2.43.0\n"

	report := Doctor(context.Background(), runner, config.DefaultConfig())

	if !report.Healthy() {
		t.Errorf("report unhealthy: %+v", report.Checks)
	}
	if got := findCheck(t, report, "python3").Version; got != "3.12.4" {
		t.Errorf("python version = %q, want 3.12.4", got)
	}
	if got := findCheck(t, report, "git").Version; got != "2.43.0" {
		t.Errorf("git version = %q, want 2.43.0", got)
	}
}

// TestDoctorMissingGit tests that a missing required tool fails the report.
func TestDoctorMissingGit(t *testing.T) {
	runner := newStubRunner()
	runner.path["git"] = false
	runner.stdout["python3"] = "Python 3.12.4\n"

	report := Doctor(context.Background(), runner, config.DefaultConfig())

	if report.Healthy() {
		t.Errorf("report healthy despite missing git")
	}
	if findCheck(t, report, "git").Found {
		t.Errorf("git reported as found")
	}
}

// TestDoctorMissingUvIsOptional tests that uv absence does not fail the report.
func TestDoctorMissingUvIsOptional(t *testing.T) {
	runner := newStubRunner()
	runner.path["uv"] = false
	runner.stdout["python3"] = "Python 3.12.4\n"
	runner.stdout["git"] = "git version 2.43.0\n"

	report := Doctor(context.Background(), runner, config.DefaultConfig())

	if !report.Healthy() {
		t.Errorf("report unhealthy despite uv being optional")
	}
}

// TestDoctorConstraintViolation tests interpreter version checking.
func TestDoctorConstraintViolation(t *testing.T) {
	runner := newStubRunner()
	runner.stdout["python3"] = "Python 3.8.10\n"
	runner.stdout["git"] = "git version 2.43.0\n"

	cfg := config.DefaultConfig()
	cfg.Python.Constraint = ">= 3.10"

	report := Doctor(context.Background(), runner, cfg)

	if report.Healthy() {
		t.Errorf("report healthy despite constraint violation")
	}
	check := findCheck(t, report, "python3")
	if check.Problem == "" {
		t.Errorf("python check has no problem recorded")
	}
}
