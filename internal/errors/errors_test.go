package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrSample,
		ErrTerm,
		ErrExec,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid configuration in .ratatop.yaml",
			suggestion: "Check your configuration file syntax",
		},
		{
			name:       "sample error",
			code:       ErrSample,
			message:    "Cannot read CPU statistics",
			suggestion: "Check that /proc is mounted",
		},
		{
			name:       "terminate error",
			code:       ErrTerm,
			message:    "Cannot signal process 1234",
			suggestion: "You may not own this process; try running with elevated privileges",
		},
		{
			name:       "exec error",
			code:       ErrExec,
			message:    "Command failed with exit code 1",
			suggestion: "Check command output for details",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorInterface(t *testing.T) {
	err := New(ErrConfig, "test message", "test suggestion")

	// Should implement error interface
	var _ error = err

	// Error() should return formatted message
	errStr := err.Error()
	assert.NotEmpty(t, errStr)
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
	}{
		{
			name: "basic error formatting",
			err:  New(ErrConfig, "Invalid configuration", "Check .ratatop.yaml syntax"),
			expectedParts: []string{
				"Invalid configuration",
				"Check .ratatop.yaml syntax",
			},
		},
		{
			name: "error with failure symbol",
			err:  New(ErrSample, "Snapshot failed", "Try again"),
			expectedParts: []string{
				"✗",
				"Snapshot failed",
			},
		},
		{
			name: "wrapped error includes cause",
			err:  WrapWithCode(errors.New("permission denied"), ErrTerm, "Cannot terminate process", "Check process ownership"),
			expectedParts: []string{
				"Cannot terminate process",
				"permission denied",
				"Check process ownership",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, part := range tt.expectedParts {
				assert.True(t, strings.Contains(errStr, part),
					"error output should contain %q, got:\n%s", part, errStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(cause, "Snapshot collection failed")

	assert.Equal(t, ErrSample, err.Code)
	assert.Equal(t, "Snapshot collection failed", err.Message)
	assert.Equal(t, cause, err.Cause)
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := WrapWithCode(cause, ErrConfig, "wrapper", "fix it")

	assert.True(t, errors.Is(err, cause))

	var appErr *Error
	require.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, ErrConfig, appErr.Code)
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		expected bool
	}{
		{"nil error", nil, ErrConfig, false},
		{"matching code", New(ErrConfig, "msg", ""), ErrConfig, true},
		{"different code", New(ErrSample, "msg", ""), ErrConfig, false},
		{"plain error", errors.New("plain"), ErrConfig, false},
		{"wrapped structured error", WrapWithCode(New(ErrTerm, "inner", ""), ErrTerm, "outer", ""), ErrTerm, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCode(tt.err, tt.code))
		})
	}
}
