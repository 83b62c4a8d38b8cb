package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"web_validator/domain/interfaces"
)

// Dirs lists the artifact directories of a run
type Dirs struct {
	Screenshots string
	Reports     string
	Logs        string
	Traces      string
}

type workspace struct {
	dirs Dirs
}

// NewWorkspace - creates every artifact directory and returns the store
func NewWorkspace(dirs Dirs) (interfaces.ArtifactStore, error) {
	for _, dir := range []string{dirs.Screenshots, dirs.Reports, dirs.Logs, dirs.Traces} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return &workspace{dirs: dirs}, nil
}

// ScreenshotPath - returns <screenshots>/<name>.<format>
func (w *workspace) ScreenshotPath(name, format string) string {
	return filepath.Join(w.dirs.Screenshots, fmt.Sprintf("%s.%s", sanitize(name), format))
}

// ReportPath - returns the path of a report file
func (w *workspace) ReportPath(name string) string {
	return filepath.Join(w.dirs.Reports, name)
}

// TracePath - returns the path of a trace archive
func (w *workspace) TracePath(name string) string {
	return filepath.Join(w.dirs.Traces, name)
}

// WriteFile - writes data, creating the parent directory when needed
func (w *workspace) WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// sanitize keeps screenshot names usable as file names
func sanitize(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ":", "_")
	return replacer.Replace(name)
}
