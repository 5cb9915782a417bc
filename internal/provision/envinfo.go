package provision

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
)

// EnvInfoFileName is the environment-info file written at the project root.
const EnvInfoFileName = ".env-info"

// EnvInfo records how to use the provisioned environment.
type EnvInfo struct {
	// Interpreter is the absolute path of the environment's python binary.
	Interpreter string
	// Activate is the shell command that activates the environment.
	Activate string
}

// NewEnvInfo derives environment info for a project root.
func NewEnvInfo(root string) *EnvInfo {
	activateScript := filepath.Join(root, EnvDirName, "bin", "activate")
	return &EnvInfo{
		Interpreter: InterpreterPath(root),
		Activate:    "source " + shellquote.Join(activateScript),
	}
}

// WriteFile writes the env-info file as key="value" lines at the project root.
func (e *EnvInfo) WriteFile(root string) (string, error) {
	path := filepath.Join(root, EnvInfoFileName)

	var b strings.Builder
	fmt.Fprintf(&b, "PYTHON_INTERPRETER=%s\n", shellDoubleQuote(e.Interpreter))
	fmt.Fprintf(&b, "VENV_ACTIVATE=%s\n", shellDoubleQuote(e.Activate))

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write environment info file: %w", err)
	}
	return path, nil
}

// shellDoubleQuote wraps a value in double quotes, escaping the characters
// that are special inside a double-quoted shell string.
func shellDoubleQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return `"` + r.Replace(s) + `"`
}
