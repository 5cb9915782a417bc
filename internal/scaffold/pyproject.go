package scaffold

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// pyproject models the generated pyproject.toml. Rendering goes through the
// TOML encoder so user-provided values are always escaped correctly.
type pyproject struct {
	BuildSystem buildSystem    `toml:"build-system"`
	Project     projectTable   `toml:"project"`
	Tool        map[string]any `toml:"tool,omitempty"`
}

type buildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

type projectTable struct {
	Name           string              `toml:"name"`
	Version        string              `toml:"version"`
	Description    string              `toml:"description"`
	RequiresPython string              `toml:"requires-python,omitempty"`
	Dependencies   []string            `toml:"dependencies"`
	OptionalDeps   map[string][]string `toml:"optional-dependencies,omitempty"`
}

// renderPyproject produces the manifest for the packaged profile.
func renderPyproject(spec *ProjectSpec, opts BuildOptions) (string, error) {
	deps := opts.Dependencies
	if deps == nil {
		deps = []string{}
	}

	p := pyproject{
		BuildSystem: buildSystem{
			Requires:     []string{"setuptools>=68"},
			BuildBackend: "setuptools.build_meta",
		},
		Project: projectTable{
			Name:           spec.Name,
			Version:        "0.1.0",
			Description:    fmt.Sprintf("%s project", spec.Name),
			RequiresPython: opts.PythonRequires,
			Dependencies:   deps,
		},
		Tool: map[string]any{
			"setuptools": map[string]any{
				"packages": map[string]any{
					"find": map[string]any{
						"where": []string{"src"},
					},
				},
			},
			"pytest": map[string]any{
				"ini_options": map[string]any{
					"testpaths": []string{"tests"},
				},
			},
		},
	}

	if len(opts.DevDependencies) > 0 {
		p.Project.OptionalDeps = map[string][]string{
			"dev": opts.DevDependencies,
		}
	}

	var b strings.Builder
	enc := toml.NewEncoder(&b)
	enc.Indent = ""
	if err := enc.Encode(p); err != nil {
		return "", fmt.Errorf("failed to encode pyproject.toml: %w", err)
	}
	return b.String(), nil
}
