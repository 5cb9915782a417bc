package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestValidateNames tests name validation across profiles.
func TestValidateNames(t *testing.T) {
	tests := []struct {
		name     string
		rawName  string
		profile  Profile
		wantType ValidationErrorType
		wantErr  bool
	}{
		{"empty", "", ProfileMinimal, EmptyName, true},
		{"whitespace only", "   \t", ProfileMinimal, EmptyName, true},
		{"slash", "foo/bar", ProfileMinimal, UnsafeName, true},
		{"backslash", `foo\bar`, ProfileMinimal, UnsafeName, true},
		{"traversal", "..secrets", ProfileMinimal, UnsafeName, true},
		{"dot", ".", ProfileMinimal, UnsafeName, true},
		{"dotdot", "..", ProfileMinimal, UnsafeName, true},
		{"illegal char colon", "a:b", ProfileMinimal, UnsafeName, true},
		{"illegal char star", "a*b", ProfileMinimal, UnsafeName, true},
		{"control char", "a\x01b", ProfileMinimal, UnsafeName, true},
		{"digit leading packaged", "1app", ProfilePackaged, InvalidPackageName, true},
		{"dot in name packaged", "my.app", ProfilePackaged, InvalidPackageName, true},
		{"digit leading minimal ok", "1app", ProfileMinimal, 0, false},
		{"plain name", "demo", ProfileMinimal, 0, false},
		{"hyphenated packaged", "my-data-app", ProfilePackaged, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Validate(tt.rawName, tt.profile, t.TempDir())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate(%q) succeeded, want error", tt.rawName)
				}
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("Validate(%q) error = %T, want *ValidationError", tt.rawName, err)
				}
				if vErr.Type != tt.wantType {
					t.Errorf("Validate(%q) error type = %v, want %v", tt.rawName, vErr.Type, tt.wantType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate(%q) error = %v, want success", tt.rawName, err)
			}
			if spec.Name != tt.rawName {
				t.Errorf("spec.Name = %q, want %q", spec.Name, tt.rawName)
			}
		})
	}
}

// TestValidatePackageNameDerivation tests hyphen substitution.
func TestValidatePackageNameDerivation(t *testing.T) {
	spec, err := Validate("my-data-app", ProfilePackaged, t.TempDir())
	if err != nil {
		t.Fatalf("Validate error = %v", err)
	}
	if spec.PackageName != "my_data_app" {
		t.Errorf("PackageName = %q, want %q", spec.PackageName, "my_data_app")
	}
}

// TestValidateDirectoryExists tests the existence probe.
func TestValidateDirectoryExists(t *testing.T) {
	base := t.TempDir()
	existing := filepath.Join(base, "demo")
	if err := os.Mkdir(existing, 0755); err != nil {
		t.Fatal(err)
	}

	_, err := Validate("demo", ProfileMinimal, base)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Type != DirectoryExists {
		t.Fatalf("Validate = %v, want DirectoryExists", err)
	}

	// Existing directory must be untouched.
	if _, statErr := os.Stat(existing); statErr != nil {
		t.Errorf("existing directory was disturbed: %v", statErr)
	}
}

// TestValidateIdempotent tests that validation has no side effects.
func TestValidateIdempotent(t *testing.T) {
	base := t.TempDir()

	first, err := Validate("demo", ProfilePackaged, base)
	if err != nil {
		t.Fatalf("first Validate error = %v", err)
	}
	second, err := Validate("demo", ProfilePackaged, base)
	if err != nil {
		t.Fatalf("second Validate error = %v", err)
	}

	if *first != *second {
		t.Errorf("repeated validation differs: %+v vs %+v", first, second)
	}

	// Validation must not create anything.
	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("validation created filesystem entries: %v", entries)
	}
}

// TestParseProfile tests profile name parsing.
func TestParseProfile(t *testing.T) {
	tests := []struct {
		input   string
		want    Profile
		wantErr bool
	}{
		{"minimal", ProfileMinimal, false},
		{"packaged", ProfilePackaged, false},
		{" Packaged ", ProfilePackaged, false},
		{"flat", ProfileMinimal, true},
		{"", ProfileMinimal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProfile(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProfile(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseProfile(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
