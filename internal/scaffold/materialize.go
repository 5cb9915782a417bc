package scaffold

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Writer writes plan entries to the filesystem.
type Writer interface {
	// WriteFile writes content to a file with the specified permissions.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory.
	CreateDir(path string) error
}

// FileWriter implements Writer for filesystem operations.
type FileWriter struct{}

// NewFileWriter creates a new FileWriter.
func NewFileWriter() Writer {
	return &FileWriter{}
}

// WriteFile writes content to a file. Writes atomically using a temporary
// file and rename.
func (w *FileWriter) WriteFile(path string, content []byte, mode os.FileMode) error {
	tempFile := path + ".tmp"
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	closeErr := f.Close()

	if err != nil {
		_ = os.Remove(tempFile)
		return err
	}
	if closeErr != nil {
		_ = os.Remove(tempFile)
		return closeErr
	}

	if err := os.Rename(tempFile, path); err != nil {
		_ = os.Remove(tempFile)
		return err
	}
	return nil
}

// CreateDir creates a directory with 0755 permissions.
func (w *FileWriter) CreateDir(path string) error {
	return os.Mkdir(path, 0755)
}

// Result reports the outcome of a materialization. On failure CreatedPaths
// lists everything successfully created before the failing entry, so the
// caller can decide whether to roll back or keep the partial tree.
type Result struct {
	// CreatedPaths are the absolute paths created, in creation order. The
	// project root itself is the first entry.
	CreatedPaths []string
	// Err is the first failure encountered, nil on success.
	Err error
}

// Materializer writes scaffold plans to disk.
type Materializer struct {
	writer Writer
}

// NewMaterializer creates a Materializer using the given Writer.
func NewMaterializer(w Writer) *Materializer {
	return &Materializer{writer: w}
}

// Materialize creates root and processes plan entries strictly in order.
// The returned Result always carries the partial created-path list, even on
// failure. The plan itself is never modified.
func (m *Materializer) Materialize(plan *Plan, root string) *Result {
	result := &Result{}

	// Root creation failure aborts before any plan entry is processed.
	if err := m.writer.CreateDir(root); err != nil {
		result.Err = newMaterializeError(RootCreationFailed, root, "failed to create project directory", err)
		return result
	}
	result.CreatedPaths = append(result.CreatedPaths, root)
	log.Debug("created project root", "path", root)

	for _, node := range plan.Nodes {
		target := filepath.Join(root, filepath.FromSlash(node.RelPath))

		switch node.Kind {
		case Directory:
			if err := m.writer.CreateDir(target); err != nil {
				result.Err = newMaterializeError(DirectoryCreateFailed, target, "failed to create directory", err)
				return result
			}
		default:
			if err := m.writer.WriteFile(target, []byte(node.Content), 0644); err != nil {
				result.Err = newMaterializeError(FileWriteFailed, target, "failed to write file", err)
				return result
			}
		}

		result.CreatedPaths = append(result.CreatedPaths, target)
		log.Debug("materialized", "path", target)
	}

	return result
}

// Rollback removes the project root and everything under it. Used when a
// failure occurs before anything user-visible depends on the directory.
func Rollback(root string) error {
	log.Debug("rolling back project directory", "path", root)
	return os.RemoveAll(root)
}
