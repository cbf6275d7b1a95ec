package linter

import (
	"fmt"
	"os"
	"path/filepath"
)

// Detector identifies the project root a lint target belongs to
type Detector struct {
	// Common project root marker files/directories
	markers []string
}

// NewDetector creates a new project detector instance
func NewDetector() *Detector {
	return &Detector{
		markers: []string{
			"tsconfig.json", // TypeScript projects
			"package.json",  // JavaScript/Node projects
			".git",          // Generic VCS marker
		},
	}
}

// DetectRoot returns the closest ancestor directory of path carrying a
// project marker, falling back to the starting directory when none is found
func (d *Detector) DetectRoot(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}
	for dir := startDir; ; dir = filepath.Dir(dir) {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}
	return startDir, nil
}

// LocateConfig returns the configuration file at the project root of path,
// or an empty string when the project has none
func (d *Detector) LocateConfig(path string) (string, error) {
	root, err := d.DetectRoot(path)
	if err != nil {
		return "", err
	}
	candidate := filepath.Join(root, ConfigFile)
	if _, err := os.Stat(candidate); err != nil {
		return "", nil
	}
	return candidate, nil
}
