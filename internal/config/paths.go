package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the filesystem layout of a packaged install. All members
// are resolved relative to the executable directory, never the current
// working directory, so a binary shipped next to its data folder works the
// same no matter where it is launched from.
type Paths struct {
	ExecutableDir string
	DataDir       string
	LogsDir       string
}

// GetPaths returns the application paths relative to the executable location
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	// Resolve symlinks to get the actual executable location
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	exeDir := filepath.Dir(exe)

	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       filepath.Join(exeDir, DefaultDataDir),
		LogsDir:       filepath.Join(exeDir, DefaultLogsDir),
	}, nil
}

// EnsureDirectories creates the install-layout directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}
	return nil
}

// GetDataPath returns the path of a file inside the install data directory
func (p *Paths) GetDataPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// GetLogPath returns the path of a file inside the install logs directory
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetRelativePath returns a path relative to the executable directory
func (p *Paths) GetRelativePath(subpath string) string {
	return filepath.Join(p.ExecutableDir, subpath)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// EnsureParentDir creates the parent directory of path if it is missing.
// Artifact writers call this before creating their output files.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

// ResolveDataFile resolves an input path against a packaged install layout:
// absolute paths and paths that exist relative to the working directory are
// used as given; otherwise the executable directory is consulted. The
// original path comes back when neither location has the file, so error
// messages show what the user typed.
func ResolveDataFile(path string) string {
	if filepath.IsAbs(path) || FileExists(path) {
		return path
	}

	if p, err := GetPaths(); err == nil {
		if candidate := p.GetRelativePath(path); FileExists(candidate) {
			return candidate
		}
	}

	return path
}
