package scaffold

import (
	"path"
	"strings"
)

// NodeKind distinguishes plan entries.
type NodeKind int

const (
	// Directory is a directory entry.
	Directory NodeKind = iota
	// TextFile is a text file entry with rendered content.
	TextFile
)

// FileNode is a single entry of a scaffold plan. Paths are slash-separated
// and relative to the project root.
type FileNode struct {
	// RelPath is the path relative to the project root.
	RelPath string
	// Kind is the entry kind.
	Kind NodeKind
	// Content is the rendered file content for TextFile entries.
	Content string
}

// Plan is the ordered sequence of entries to materialize. Directories always
// appear before any entry nested under them. A plan is derived from a
// ProjectSpec, never mutated, and consumed exactly once.
type Plan struct {
	Nodes []FileNode
}

// BuildOptions carries values that flow into generated manifests.
type BuildOptions struct {
	// Dependencies are the runtime dependencies declared in the packaged
	// profile's manifest.
	Dependencies []string
	// DevDependencies are the optional development dependencies.
	DevDependencies []string
	// PythonRequires is the interpreter version constraint recorded in the
	// manifest (e.g. ">=3.10").
	PythonRequires string
}

// BuildPlan computes the ordered file plan for a validated spec. It is
// deterministic: the same spec and options always yield byte-identical
// content in the same order.
func BuildPlan(spec *ProjectSpec, opts BuildOptions) (*Plan, error) {
	ctx := renderContext{
		Name:        spec.Name,
		PackageName: spec.PackageName,
	}

	var nodes []FileNode

	switch spec.Profile {
	case ProfilePackaged:
		manifest, err := renderPyproject(spec, opts)
		if err != nil {
			return nil, err
		}
		pkgDir := path.Join("src", spec.PackageName)
		nodes = []FileNode{
			{RelPath: "src", Kind: Directory},
			{RelPath: pkgDir, Kind: Directory},
			{RelPath: "tests", Kind: Directory},
			{RelPath: "README.md", Kind: TextFile, Content: mustRender(readmePackagedTemplate, ctx)},
			{RelPath: ".gitignore", Kind: TextFile, Content: gitignoreContent},
			{RelPath: "pyproject.toml", Kind: TextFile, Content: manifest},
			{RelPath: path.Join(pkgDir, "__init__.py"), Kind: TextFile, Content: mustRender(initPyTemplate, ctx)},
			{RelPath: path.Join(pkgDir, "logic.py"), Kind: TextFile, Content: mustRender(logicPyTemplate, ctx)},
			{RelPath: path.Join(pkgDir, "main.py"), Kind: TextFile, Content: mustRender(mainPyTemplate, ctx)},
			{RelPath: path.Join("tests", "test_logic.py"), Kind: TextFile, Content: mustRender(testLogicPyTemplate, ctx)},
		}
	default:
		nodes = []FileNode{
			{RelPath: "src", Kind: Directory},
			{RelPath: "notebooks", Kind: Directory},
			{RelPath: "README.md", Kind: TextFile, Content: mustRender(readmeMinimalTemplate, ctx)},
			{RelPath: ".gitignore", Kind: TextFile, Content: gitignoreContent},
			{RelPath: path.Join("src", "app.py"), Kind: TextFile, Content: mustRender(appPyTemplate, ctx)},
		}
	}

	plan := &Plan{Nodes: nodes}
	if err := validatePlan(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// validatePlan checks the ordering invariant: every entry's parent directory
// must appear strictly earlier in the sequence.
func validatePlan(plan *Plan) error {
	seen := make(map[string]NodeKind, len(plan.Nodes))
	for _, node := range plan.Nodes {
		if node.RelPath == "" || strings.HasPrefix(node.RelPath, "/") {
			return &PlanError{Message: "entry path must be relative and non-empty", Path: node.RelPath}
		}
		parent := path.Dir(node.RelPath)
		if parent != "." {
			kind, ok := seen[parent]
			if !ok {
				return &PlanError{Message: "parent directory not materialized before entry", Path: node.RelPath}
			}
			if kind != Directory {
				return &PlanError{Message: "parent entry is not a directory", Path: node.RelPath}
			}
		}
		if _, dup := seen[node.RelPath]; dup {
			return &PlanError{Message: "duplicate entry", Path: node.RelPath}
		}
		seen[node.RelPath] = node.Kind
	}
	return nil
}
