package scaffold

import (
	"strings"
	"text/template"
)

// renderContext carries the values substituted into file templates.
type renderContext struct {
	Name        string
	PackageName string
}

// pyString escapes a value for use inside a double-quoted Python string
// literal, so a project name containing quotes or backslashes cannot corrupt
// generated code.
func pyString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

var templateFuncs = template.FuncMap{
	"pystr": pyString,
}

func parseTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

// mustRender renders a parsed template with the given context. Templates are
// compile-time constants rendered over a plain struct, so execution cannot
// fail for validated input.
func mustRender(t *template.Template, ctx renderContext) string {
	var b strings.Builder
	if err := t.Execute(&b, ctx); err != nil {
		panic(err)
	}
	return b.String()
}

var readmeMinimalTemplate = parseTemplate("README.md", `# {{.Name}}

A Python project scaffolded with pystart.

## Layout

- ` + "`src/`" + ` — application code (entry point: ` + "`src/app.py`" + `)
- ` + "`notebooks/`" + ` — exploratory notebooks
- ` + "`requirements.txt`" + ` — pinned dependencies (exported from the virtual environment)

## Getting started

` + "```sh" + `
source venv/bin/activate
python src/app.py
` + "```" + `
`)

var readmePackagedTemplate = parseTemplate("README.md", `# {{.Name}}

A Python project scaffolded with pystart.

## Layout

- ` + "`src/{{.PackageName}}/`" + ` — the importable package
- ` + "`tests/`" + ` — pytest test suite
- ` + "`pyproject.toml`" + ` — project metadata and dependencies

## Getting started

` + "```sh" + `
source venv/bin/activate
python -m {{.PackageName}}.main
pytest
` + "```" + `
`)

var appPyTemplate = parseTemplate("app.py", `"""Entry point for {{pystr .Name}}."""


def main() -> None:
    print("{{pystr .Name}} is ready.")


if __name__ == "__main__":
    main()
`)

var initPyTemplate = parseTemplate("__init__.py", `"""{{pystr .Name}} package."""

__version__ = "0.1.0"
`)

var logicPyTemplate = parseTemplate("logic.py", `"""Core logic for {{pystr .Name}}."""


def greet(name: str) -> str:
    return f"Hello, {name}!"
`)

var mainPyTemplate = parseTemplate("main.py", `"""Entry point for {{pystr .Name}}."""

from {{.PackageName}}.logic import greet


def main() -> None:
    print(greet("{{pystr .Name}}"))


if __name__ == "__main__":
    main()
`)

var testLogicPyTemplate = parseTemplate("test_logic.py", `from {{.PackageName}}.logic import greet


def test_greet() -> None:
    assert greet("world") == "Hello, world!"
`)

// gitignoreContent is profile-independent.
const gitignoreContent = `# Virtual environment
venv/
.env

# Python caches
__pycache__/
*.py[cod]
.pytest_cache/

# Notebook checkpoints
.ipynb_checkpoints/

# Build artifacts
dist/
build/
*.egg-info/

# Project environment info
.env-info
`
