// Package docstore persists uploaded resume bytes to scoped temporary
// storage for the duration of one parse.
package docstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/adityakaushiik/CandidateManagement/internal/shared/telemetry"
	"github.com/adityakaushiik/CandidateManagement/internal/shared/util"
)

// Store writes uploaded documents to a local temp directory. The returned
// path is only valid until Release is called for it.
type Store struct {
	baseDir string
}

// New creates a store rooted at baseDir. An empty baseDir falls back to the
// system temp directory.
func New(baseDir string) *Store {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Store{baseDir: baseDir}
}

// Save writes content to a temp file whose name keeps the original file
// extension, so downstream format dispatch still works.
func (s *Store) Save(fileName string, content []byte) (string, error) {
	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("save upload: mkdir: %w", err)
	}

	path := filepath.Join(s.baseDir, fmt.Sprintf("%s_%s", uuid.NewString(), sanitized))
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("save upload: write: %w", err)
	}
	return path, nil
}

// Release removes a file previously returned by Save. It tolerates the path
// already being gone; callers must invoke it exactly once per successful Save.
func (s *Store) Release(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		telemetry.Warn("release temp file", map[string]any{"path": path, "err": err.Error()})
	}
}
