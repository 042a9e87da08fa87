package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/medflow-io/medflow/internal/models"
)

// WriteSessionReport writes a session report to ~/.medflow/sessions/,
// named after the dashboard session id. Returns the file path.
func WriteSessionReport(report models.SessionReport) (string, error) {
	if err := EnsureSessionsDir(); err != nil {
		return "", fmt.Errorf("failed to ensure sessions dir: %w", err)
	}

	dir, err := GlobalSessionsDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, report.SessionID+".yaml")
	if err := SaveYAML(path, report); err != nil {
		return "", err
	}
	return path, nil
}

// ListSessionReports returns the report files on disk, newest first by name
// modification time.
func ListSessionReports() ([]string, error) {
	dir, err := GlobalSessionsDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	sort.Slice(paths, func(i, j int) bool {
		fi, errI := os.Stat(paths[i])
		fj, errJ := os.Stat(paths[j])
		if errI != nil || errJ != nil {
			return paths[i] > paths[j]
		}
		return fi.ModTime().After(fj.ModTime())
	})

	return paths, nil
}
