package app

import (
	"context"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pystart-cli/pystart/internal/config"
	"github.com/pystart-cli/pystart/internal/execx"
)

// ToolCheck is the preflight result for one external tool.
type ToolCheck struct {
	// Tool is the binary name.
	Tool string
	// Found reports whether the binary is on PATH.
	Found bool
	// Version is the reported tool version, if it could be determined.
	Version string
	// Required reports whether a missing tool blocks scaffolding entirely.
	Required bool
	// Problem describes an issue with an otherwise present tool (e.g. the
	// interpreter does not satisfy the configured version constraint).
	Problem string
}

// DoctorReport is the result of the preflight checks.
type DoctorReport struct {
	Checks []ToolCheck
}

// Healthy reports whether every required tool is present and problem-free.
func (r *DoctorReport) Healthy() bool {
	for _, c := range r.Checks {
		if c.Required && (!c.Found || c.Problem != "") {
			return false
		}
	}
	return true
}

// Doctor checks the external collaborator tools: the Python interpreter, the
// uv installer, and git. A missing uv is not an error since the venv
// strategy can substitute for it.
func Doctor(ctx context.Context, runner execx.CommandRunner, cfg *config.Config) *DoctorReport {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if runner == nil {
		runner = execx.NewRealRunner()
	}

	report := &DoctorReport{}
	report.Checks = append(report.Checks, checkPython(ctx, runner, cfg.Python.Constraint))
	report.Checks = append(report.Checks, checkTool(ctx, runner, "uv", []string{"--version"}, false))
	report.Checks = append(report.Checks, checkTool(ctx, runner, "git", []string{"--version"}, true))
	return report
}

// checkPython probes python3 and compares its version against the configured
// constraint.
func checkPython(ctx context.Context, runner execx.CommandRunner, constraint string) ToolCheck {
	check := checkTool(ctx, runner, "python3", []string{"--version"}, true)
	if !check.Found || check.Version == "" || constraint == "" {
		return check
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		check.Problem = "invalid configured version constraint: " + constraint
		return check
	}
	v, err := semver.NewVersion(check.Version)
	if err != nil {
		check.Problem = "unparseable interpreter version: " + check.Version
		return check
	}
	if !c.Check(v) {
		check.Problem = "interpreter version " + check.Version + " does not satisfy " + constraint
	}
	return check
}

// checkTool probes one binary and captures its version output.
func checkTool(ctx context.Context, runner execx.CommandRunner, tool string, versionArgs []string, required bool) ToolCheck {
	check := ToolCheck{Tool: tool, Required: required}

	if !runner.LookPath(tool) {
		return check
	}
	check.Found = true

	result, err := runner.Run(ctx, tool, versionArgs, execx.RunOpts{})
	if err != nil || result.ExitCode != 0 {
		return check
	}
	check.Version = parseVersionOutput(result.Stdout)
	return check
}

// parseVersionOutput extracts a version number from output like
// "Python 3.12.4" or "git version 2.43.0".
func parseVersionOutput(out string) string {
	fields := strings.Fields(strings.TrimSpace(out))
	for i := len(fields) - 1; i >= 0; i-- {
		f := fields[i]
		if len(f) > 0 && f[0] >= '0' && f[0] <= '9' {
			return f
		}
	}
	return ""
}
