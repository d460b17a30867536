package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorType_Constants(t *testing.T) {
	tests := []struct {
		name     string
		errType  ErrorType
		expected string
	}{
		{
			name:     "not found error type",
			errType:  ErrTypeNotFound,
			expected: "NOT_FOUND",
		},
		{
			name:     "load error type",
			errType:  ErrTypeLoad,
			expected: "LOAD",
		},
		{
			name:     "empty result error type",
			errType:  ErrTypeEmpty,
			expected: "EMPTY_RESULT",
		},
		{
			name:     "render error type",
			errType:  ErrTypeRender,
			expected: "RENDER",
		},
		{
			name:     "storage error type",
			errType:  ErrTypeStorage,
			expected: "STORAGE",
		},
		{
			name:     "validation error type",
			errType:  ErrTypeValidation,
			expected: "VALIDATION",
		},
		{
			name:     "config error type",
			errType:  ErrTypeConfig,
			expected: "CONFIG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.errType))
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name        string
		appError    *AppError
		wantMessage string
	}{
		{
			name: "error without cause",
			appError: &AppError{
				Type:    ErrTypeEmpty,
				Message: "no valid observations remain after cleaning",
				Cause:   nil,
			},
			wantMessage: "[EMPTY_RESULT] no valid observations remain after cleaning",
		},
		{
			name: "error with cause",
			appError: &AppError{
				Type:    ErrTypeLoad,
				Message: "failed to parse observation file",
				Cause:   fmt.Errorf("record on line 7: wrong number of fields"),
			},
			wantMessage: "[LOAD] failed to parse observation file: record on line 7: wrong number of fields",
		},
		{
			name: "error with wrapped cause",
			appError: &AppError{
				Type:    ErrTypeRender,
				Message: "failed to write plot",
				Cause:   errors.New("permission denied"),
			},
			wantMessage: "[RENDER] failed to write plot: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMessage, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := NewLoadError("failed to parse observation file", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))

	noCause := NewEmptyResultError("no rows")
	assert.Nil(t, noCause.Unwrap())
}

func TestAppError_WithContext(t *testing.T) {
	err := NewLoadError("failed to parse observation file", nil).
		WithContext("path", "data/mmRR2_lc.csv").
		WithContext("line", 7)

	require.NotNil(t, err.Context)
	assert.Equal(t, "data/mmRR2_lc.csv", err.Context["path"])
	assert.Equal(t, 7, err.Context["line"])

	// WithContext on a zero-value error must allocate the map.
	bare := &AppError{Type: ErrTypeStorage, Message: "write failed"}
	bare.WithContext("artifact", "stats.json")
	assert.Equal(t, "stats.json", bare.Context["artifact"])
}

func TestErrorConstructors(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
	}{
		{
			name:     "not found",
			err:      NewNotFoundError("data/missing.csv", cause),
			wantType: ErrTypeNotFound,
		},
		{
			name:     "load",
			err:      NewLoadError("malformed table", cause),
			wantType: ErrTypeLoad,
		},
		{
			name:     "empty result",
			err:      NewEmptyResultError("zero rows"),
			wantType: ErrTypeEmpty,
		},
		{
			name:     "render",
			err:      NewRenderError("png encode failed", cause),
			wantType: ErrTypeRender,
		},
		{
			name:     "storage",
			err:      NewStorageError("report write failed", cause),
			wantType: ErrTypeStorage,
		},
		{
			name:     "validation",
			err:      NewValidationError("unsupported extension"),
			wantType: ErrTypeValidation,
		},
		{
			name:     "config",
			err:      NewConfigError("invalid dpi", cause),
			wantType: ErrTypeConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.err)
			assert.Equal(t, tt.wantType, tt.err.Type)
		})
	}
}

func TestNewNotFoundError_Context(t *testing.T) {
	err := NewNotFoundError("data/mmRR2_lc.csv", nil)

	assert.Contains(t, err.Message, "data/mmRR2_lc.csv")
	assert.Equal(t, "data/mmRR2_lc.csv", err.Context["path"])
}

func TestIsType(t *testing.T) {
	loadErr := NewLoadError("bad row", nil)
	wrapped := fmt.Errorf("stage failed: %w", loadErr)

	assert.True(t, IsType(loadErr, ErrTypeLoad))
	assert.True(t, IsType(wrapped, ErrTypeLoad))
	assert.False(t, IsType(wrapped, ErrTypeRender))
	assert.False(t, IsType(errors.New("plain"), ErrTypeLoad))
	assert.False(t, IsType(nil, ErrTypeLoad))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrTypeEmpty, TypeOf(NewEmptyResultError("nothing left")))
	assert.Equal(t, ErrTypeRender, TypeOf(fmt.Errorf("wrap: %w", NewRenderError("fail", nil))))
	assert.Equal(t, ErrorType(""), TypeOf(errors.New("plain")))
	assert.Equal(t, ErrorType(""), TypeOf(nil))
}
