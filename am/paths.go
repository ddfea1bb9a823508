package am

import (
	"os"
	"path/filepath"
	"strings"
)

// executable is swapped in tests
var executable = os.Executable

// DefaultJobsPath returns jobs.json in the install directory, the parent of
// the directory holding the binary (<prefix>/bin/jobs -> <prefix>/jobs.json).
func DefaultJobsPath() string {
	exe, err := executable()
	if err != nil {
		return DefaultJobsFileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", DefaultJobsFileName)
}

// JobsPath returns the jobs file to read: the configured path with a leading
// ~/ expanded, or DefaultJobsPath when unset
func (c *Config) JobsPath() string {
	path := strings.TrimSpace(c.Jobs.Path)
	if path == "" {
		return DefaultJobsPath()
	}
	if strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
