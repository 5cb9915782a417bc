// Package scaffold computes and materializes project skeletons.
//
// The pipeline is: Validate a raw project name into a ProjectSpec, derive a
// deterministic Plan of directories and files from it, then write the plan to
// disk with a Materializer. Each stage is side-effect free except for the
// directory-existence probe during validation and the writes during
// materialization.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Profile selects a project layout variant.
type Profile int

const (
	// ProfileMinimal is a flat layout: src/, notebooks/, a single app entry
	// file, and a requirements list produced later by the provisioner.
	ProfileMinimal Profile = iota
	// ProfilePackaged is a packaged layout: src/<package>/ with module files,
	// a parallel tests/ directory, and a pyproject.toml manifest.
	ProfilePackaged
)

// String returns the profile name as used on the command line.
func (p Profile) String() string {
	switch p {
	case ProfilePackaged:
		return "packaged"
	default:
		return "minimal"
	}
}

// ParseProfile parses a profile name. Accepted values: "minimal", "packaged".
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal":
		return ProfileMinimal, nil
	case "packaged":
		return ProfilePackaged, nil
	default:
		return ProfileMinimal, fmt.Errorf("unknown profile: %q (available: minimal, packaged)", s)
	}
}

// Profiles returns all known profiles in display order.
func Profiles() []Profile {
	return []Profile{ProfileMinimal, ProfilePackaged}
}

// ProjectSpec is the validated, immutable description of the project to create.
type ProjectSpec struct {
	// Name is the project directory name as given by the user.
	Name string
	// PackageName is Name with separator characters replaced so it is usable
	// as an importable package name.
	PackageName string
	// Profile selects the layout variant.
	Profile Profile
	// Root is the absolute path of the directory to create.
	Root string
}

// identifierPattern matches valid importable package names.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// unsafeChars are characters rejected in project names in addition to path
// separators and control characters.
const unsafeChars = `:*?"<>|`

// Validate checks a raw project name and resolves it against baseDir into a
// ProjectSpec. It performs no writes; its only side effect is a
// directory-existence probe.
func Validate(rawName string, profile Profile, baseDir string) (*ProjectSpec, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return nil, NewValidationError(EmptyName, rawName, "project name must not be empty")
	}

	if err := checkNameSafety(name); err != nil {
		return nil, err
	}

	pkgName := strings.ReplaceAll(name, "-", "_")
	if profile == ProfilePackaged && !identifierPattern.MatchString(pkgName) {
		return nil, NewValidationError(InvalidPackageName, name,
			"project name does not yield a valid package name for the packaged profile")
	}

	root, err := filepath.Abs(filepath.Join(baseDir, name))
	if err != nil {
		return nil, NewValidationError(UnsafeName, name, "project name does not resolve to a usable path")
	}

	if _, err := os.Stat(root); err == nil {
		return nil, NewValidationError(DirectoryExists, name, "directory already exists")
	}

	return &ProjectSpec{
		Name:        name,
		PackageName: pkgName,
		Profile:     profile,
		Root:        root,
	}, nil
}

// checkNameSafety rejects names that would escape the target directory or are
// illegal as a single path element.
func checkNameSafety(name string) error {
	if name == "." || name == ".." {
		return NewValidationError(UnsafeName, name, "project name must not be a relative path segment")
	}
	if strings.ContainsAny(name, `/\`) {
		return NewValidationError(UnsafeName, name, "project name must not contain path separators")
	}
	if strings.Contains(name, "..") {
		return NewValidationError(UnsafeName, name, "project name must not contain traversal segments")
	}
	if strings.ContainsAny(name, unsafeChars) {
		return NewValidationError(UnsafeName, name, "project name contains characters illegal in a path")
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return NewValidationError(UnsafeName, name, "project name contains control characters")
		}
	}
	return nil
}
