// Package validation provides the preflight checks the CLI runs before a
// pipeline starts: the observation file must be an openable regular file
// and artifact destinations must be writable.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/mazouznourelislam20-prog/variable-star-analysis/internal/errors"
)

// FileValidator provides file validation shared by the CLI entry points
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateFile checks that path names an existing, readable regular file.
// A missing or unopenable path is a not-found condition; a directory is a
// load failure because it exists but can never parse as a table.
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return apperrors.NewNotFoundError(path, err)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewNotFoundError(path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return apperrors.NewLoadError(fmt.Sprintf("%s is a directory, not a file", path), nil)
	}

	// Check if file is readable by opening it
	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewNotFoundError(path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateObservationFile checks that path can serve as input for the
// resolved reader format ("csv" or "xlsx").
func (v *FileValidator) ValidateObservationFile(path, format string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}

	if strings.EqualFold(format, "xlsx") {
		// Editors leave ~$ lock files next to open workbooks; those are
		// never the data.
		base := filepath.Base(path)
		if strings.HasPrefix(base, "~$") {
			v.logger.Warn("Rejecting temporary Excel file",
				slog.String("file", path))
			return apperrors.NewValidationError(fmt.Sprintf("file %s is a temporary Excel lock file", path))
		}
	}

	return nil
}

// ValidateOutputPath ensures the parent directory of an artifact exists (or
// can be created) and is writable.
func (v *FileValidator) ValidateOutputPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	// Verify it's writable by creating a test file
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output path validated",
		slog.String("path", path))
	return nil
}
