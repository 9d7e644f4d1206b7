package logger

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvLogger_Debug(t *testing.T) {
	tests := []struct {
		name      string
		envValue  string
		expectLog bool
	}{
		{
			name:      "logs when RATATOP_DEBUG is set",
			envValue:  "1",
			expectLog: true,
		},
		{
			name:      "logs when RATATOP_DEBUG is any value",
			envValue:  "true",
			expectLog: true,
		},
		{
			name:      "does not log when RATATOP_DEBUG is empty",
			envValue:  "",
			expectLog: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Capture log output
			var buf bytes.Buffer
			log.SetOutput(&buf)
			defer log.SetOutput(os.Stderr)

			if tt.envValue != "" {
				t.Setenv("RATATOP_DEBUG", tt.envValue)
			} else {
				os.Unsetenv("RATATOP_DEBUG")
			}

			l := NewEnvLogger("[test]")
			l.Debug("test message %s", "arg")

			output := buf.String()
			if tt.expectLog {
				assert.True(t, strings.Contains(output, "test message arg"))
				assert.True(t, strings.Contains(output, "[test]"))
			} else {
				assert.Empty(t, output)
			}
		})
	}
}

func TestEnvLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewEnvLogger("[sampler]")

	l.Info("info message")
	assert.True(t, strings.Contains(buf.String(), "[sampler] info message"))
	buf.Reset()

	l.Warn("warn message")
	assert.True(t, strings.Contains(buf.String(), "WARN: warn message"))
	buf.Reset()

	l.Error("error message")
	assert.True(t, strings.Contains(buf.String(), "ERROR: error message"))
}

func TestNoopLogger(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	t.Setenv("RATATOP_DEBUG", "1")

	l := Noop()
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")

	assert.Empty(t, buf.String())
}

func TestBufferLogger(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	require.Len(t, l.Messages, 4)
	assert.Equal(t, LogMessage{Level: "debug", Message: "debug 1"}, l.Messages[0])
	assert.Equal(t, LogMessage{Level: "info", Message: "info 2"}, l.Messages[1])
	assert.Equal(t, LogMessage{Level: "warn", Message: "warn 3"}, l.Messages[2])
	assert.Equal(t, LogMessage{Level: "error", Message: "error 4"}, l.Messages[3])
}

func TestBufferLogger_HasLevel(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("test")
	assert.True(t, l.HasLevel("debug"))
	assert.False(t, l.HasLevel("error"))

	l.Error("test")
	assert.True(t, l.HasLevel("error"))
}

func TestBufferLogger_Clear(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("test1")
	l.Info("test2")
	require.Len(t, l.Messages, 2)

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestDefault(t *testing.T) {
	original := defaultLogger
	defer func() { defaultLogger = original }()

	d := Default()
	assert.NotNil(t, d)

	buf := NewBufferLogger()
	SetDefault(buf)

	assert.Equal(t, buf, Default())
}

func TestEnvLogger_FormatStrings(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	l := NewEnvLogger("[fmt]")

	l.Info("int: %d, string: %s, float: %.2f", 42, "hello", 3.14159)

	output := buf.String()
	assert.True(t, strings.Contains(output, "int: 42"))
	assert.True(t, strings.Contains(output, "string: hello"))
	assert.True(t, strings.Contains(output, "float: 3.14"))
}

func TestRedirect(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	t.Run("boolean values leave output alone", func(t *testing.T) {
		var buf bytes.Buffer
		log.SetOutput(&buf)

		t.Setenv("RATATOP_DEBUG", "1")
		Redirect()

		log.Print("still buffered")
		assert.Contains(t, buf.String(), "still buffered")
	})

	t.Run("path value redirects to file", func(t *testing.T) {
		path := t.TempDir() + "/debug.log"
		t.Setenv("RATATOP_DEBUG", path)

		Redirect()
		log.Print("to file")
		log.SetOutput(os.Stderr)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "to file")
	})
}
