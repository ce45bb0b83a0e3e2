package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths centralizes filesystem locations used by the preparers.
// All relative paths resolve against the current working directory so the
// output files land next to wherever the command was invoked, which is what
// the tutorial expects.
type Paths struct {
	OutputDir string
	LogsDir   string
}

// NewPaths builds a Paths from configuration, resolving relative directories
// against the working directory.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	return &Paths{
		OutputDir: resolveDir(wd, cfg.OutputDir),
		LogsDir:   resolveDir(wd, cfg.LogsDir),
	}, nil
}

func resolveDir(base, dir string) string {
	if dir == "" {
		return base
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

// GetOutputPath returns the full path for an output file
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// EnsureDirectories creates the output and logs directories if missing
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
