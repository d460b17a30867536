package validation

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mazouznourelislam20-prog/variable-star-analysis/internal/errors"
)

func newTestValidator() *FileValidator {
	return NewFileValidator(slog.New(slog.NewTextHandler(os.Stdout, nil)))
}

func TestFileValidator_ValidateFile(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		wantErr   bool
		wantType  apperrors.ErrorType
	}{
		{
			name: "valid readable file",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "obs.csv")
				require.NoError(t, os.WriteFile(file, []byte("BJD,raw,ost_decorr,ost_tfa,err\n"), 0644))
				return file
			},
			wantErr: false,
		},
		{
			name: "non-existent file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.csv")
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeNotFound,
		},
		{
			name: "path is a directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr:  true,
			wantType: apperrors.ErrTypeLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator()
			path := tt.setupFunc(t)

			err := v.ValidateFile(path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType),
				"expected %s, got %s", tt.wantType, apperrors.TypeOf(err))
		})
	}
}

func TestFileValidator_ValidateObservationFile(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		format    string
		wantErr   bool
		wantType  apperrors.ErrorType
	}{
		{
			name: "csv file",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "obs.csv")
				require.NoError(t, os.WriteFile(file, []byte("header\n"), 0644))
				return file
			},
			format:  "csv",
			wantErr: false,
		},
		{
			name: "xlsx file",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "obs.xlsx")
				require.NoError(t, os.WriteFile(file, []byte{0x50, 0x4B}, 0644))
				return file
			},
			format:  "xlsx",
			wantErr: false,
		},
		{
			name: "temporary Excel lock file",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "~$obs.xlsx")
				require.NoError(t, os.WriteFile(file, []byte{0x50, 0x4B}, 0644))
				return file
			},
			format:   "xlsx",
			wantErr:  true,
			wantType: apperrors.ErrTypeValidation,
		},
		{
			name: "missing file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.csv")
			},
			format:   "csv",
			wantErr:  true,
			wantType: apperrors.ErrTypeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestValidator()
			path := tt.setupFunc(t)

			err := v.ValidateObservationFile(path, tt.format)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, tt.wantType),
				"expected %s, got %s", tt.wantType, apperrors.TypeOf(err))
		})
	}
}

func TestFileValidator_ValidateOutputPath(t *testing.T) {
	v := newTestValidator()

	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "plots", "curve.png")
		require.NoError(t, v.ValidateOutputPath(path))

		info, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("accepts existing writable directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "curve.png")
		assert.NoError(t, v.ValidateOutputPath(path))
	})

	t.Run("rejects unwritable directory", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("directory permissions are not enforced for root")
		}
		dir := t.TempDir()
		require.NoError(t, os.Chmod(dir, 0555))
		defer os.Chmod(dir, 0755)

		err := v.ValidateOutputPath(filepath.Join(dir, "curve.png"))
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
	})
}

func TestNewFileValidator_NilLogger(t *testing.T) {
	v := NewFileValidator(nil)
	require.NotNil(t, v)
	assert.NotNil(t, v.logger)
}
