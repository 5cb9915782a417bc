package scaffold

import (
	"path"
	"reflect"
	"strings"
	"testing"
)

func testSpec(t *testing.T, name string, profile Profile) *ProjectSpec {
	t.Helper()
	spec, err := Validate(name, profile, t.TempDir())
	if err != nil {
		t.Fatalf("Validate(%q) error = %v", name, err)
	}
	return spec
}

// TestBuildPlanDeterministic tests that identical inputs yield byte-identical plans.
func TestBuildPlanDeterministic(t *testing.T) {
	for _, profile := range Profiles() {
		t.Run(profile.String(), func(t *testing.T) {
			spec := testSpec(t, "my-data-app", profile)
			opts := BuildOptions{
				Dependencies:    []string{"requests", "pandas"},
				DevDependencies: []string{"pytest"},
				PythonRequires:  ">=3.10",
			}

			first, err := BuildPlan(spec, opts)
			if err != nil {
				t.Fatalf("first BuildPlan error = %v", err)
			}
			second, err := BuildPlan(spec, opts)
			if err != nil {
				t.Fatalf("second BuildPlan error = %v", err)
			}

			if !reflect.DeepEqual(first, second) {
				t.Errorf("plans differ between invocations")
			}
		})
	}
}

// TestBuildPlanOrdering tests the parent-before-child invariant.
func TestBuildPlanOrdering(t *testing.T) {
	for _, profile := range Profiles() {
		t.Run(profile.String(), func(t *testing.T) {
			spec := testSpec(t, "my-data-app", profile)
			plan, err := BuildPlan(spec, BuildOptions{})
			if err != nil {
				t.Fatalf("BuildPlan error = %v", err)
			}

			seen := map[string]bool{}
			for _, node := range plan.Nodes {
				parent := path.Dir(node.RelPath)
				if parent != "." && !seen[parent] {
					t.Errorf("entry %q appears before its parent %q", node.RelPath, parent)
				}
				seen[node.RelPath] = true
			}
		})
	}
}

// TestBuildPlanMinimalLayout tests the minimal profile contents.
func TestBuildPlanMinimalLayout(t *testing.T) {
	spec := testSpec(t, "demo", ProfileMinimal)
	plan, err := BuildPlan(spec, BuildOptions{})
	if err != nil {
		t.Fatalf("BuildPlan error = %v", err)
	}

	wantPaths := []string{"src", "notebooks", "README.md", ".gitignore", "src/app.py"}
	if len(plan.Nodes) != len(wantPaths) {
		t.Fatalf("plan has %d entries, want %d", len(plan.Nodes), len(wantPaths))
	}
	for i, want := range wantPaths {
		if plan.Nodes[i].RelPath != want {
			t.Errorf("entry %d = %q, want %q", i, plan.Nodes[i].RelPath, want)
		}
	}
}

// TestBuildPlanPackagedLayout tests the packaged profile contents.
func TestBuildPlanPackagedLayout(t *testing.T) {
	spec := testSpec(t, "my-data-app", ProfilePackaged)
	plan, err := BuildPlan(spec, BuildOptions{Dependencies: []string{"requests"}})
	if err != nil {
		t.Fatalf("BuildPlan error = %v", err)
	}

	pkgDirIdx, logicIdx := -1, -1
	for i, node := range plan.Nodes {
		switch node.RelPath {
		case "src/my_data_app":
			pkgDirIdx = i
			if node.Kind != Directory {
				t.Errorf("src/my_data_app is not a directory entry")
			}
		case "src/my_data_app/logic.py":
			logicIdx = i
		}
	}
	if pkgDirIdx < 0 || logicIdx < 0 {
		t.Fatalf("plan is missing package directory or logic module")
	}
	if pkgDirIdx >= logicIdx {
		t.Errorf("package directory (index %d) does not precede logic module (index %d)", pkgDirIdx, logicIdx)
	}
}

// TestBuildPlanNoUnsubstitutedPlaceholders tests that rendering leaves no template tokens.
func TestBuildPlanNoUnsubstitutedPlaceholders(t *testing.T) {
	for _, profile := range Profiles() {
		t.Run(profile.String(), func(t *testing.T) {
			spec := testSpec(t, "my-data-app", profile)
			plan, err := BuildPlan(spec, BuildOptions{Dependencies: []string{"requests"}})
			if err != nil {
				t.Fatalf("BuildPlan error = %v", err)
			}

			for _, node := range plan.Nodes {
				if strings.Contains(node.Content, "{{") || strings.Contains(node.Content, "}}") {
					t.Errorf("entry %q contains unsubstituted template tokens", node.RelPath)
				}
			}
		})
	}
}

// TestValidatePlanRejectsBadOrdering tests the internal consistency check.
func TestValidatePlanRejectsBadOrdering(t *testing.T) {
	tests := []struct {
		name string
		plan *Plan
	}{
		{"file before parent dir", &Plan{Nodes: []FileNode{
			{RelPath: "src/app.py", Kind: TextFile},
			{RelPath: "src", Kind: Directory},
		}}},
		{"parent is a file", &Plan{Nodes: []FileNode{
			{RelPath: "src", Kind: TextFile},
			{RelPath: "src/app.py", Kind: TextFile},
		}}},
		{"duplicate entry", &Plan{Nodes: []FileNode{
			{RelPath: "src", Kind: Directory},
			{RelPath: "src", Kind: Directory},
		}}},
		{"absolute path", &Plan{Nodes: []FileNode{
			{RelPath: "/etc", Kind: Directory},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validatePlan(tt.plan); err == nil {
				t.Errorf("validatePlan accepted an invalid plan")
			}
		})
	}
}

// TestPyStringEscaping tests Python string literal escaping.
func TestPyStringEscaping(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`plain`, `plain`},
		{`has"quote`, `has\"quote`},
		{`back\slash`, `back\\slash`},
		{`both"\`, `both\"\\`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := pyString(tt.input); got != tt.want {
				t.Errorf("pyString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
