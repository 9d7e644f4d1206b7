package cli

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratatop/internal/errors"
)

func TestWriteJSONSuccess(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONSuccess(&buf, map[string]int{"cores": 8})
	require.NoError(t, err)

	var env JSONEnvelope
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Nil(t, env.Error)
	require.NotNil(t, env.Data)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, float64(8), data["cores"])
}

func TestWriteJSONFromError(t *testing.T) {
	t.Run("structured error keeps code and suggestion", func(t *testing.T) {
		var buf bytes.Buffer
		serr := errors.New(errors.ErrConfig, "Bad config", "Fix the file")
		require.NoError(t, WriteJSONFromError(&buf, serr))

		var env JSONEnvelope
		require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, errors.ErrConfig, env.Error.Code)
		assert.Equal(t, "Bad config", env.Error.Message)
		assert.Equal(t, "Fix the file", env.Error.Suggestion)
	})

	t.Run("plain error gets default code", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSONFromError(&buf, stderrors.New("boom")))

		var env JSONEnvelope
		require.NoError(t, json.Unmarshal(buf.Bytes(), &env))

		require.NotNil(t, env.Error)
		assert.Equal(t, errors.ErrSample, env.Error.Code)
		assert.Equal(t, "boom", env.Error.Message)
	})

	t.Run("wrapped structured error is unwrapped", func(t *testing.T) {
		inner := errors.New(errors.ErrTerm, "Not a terminal", "Use snapshot")
		wrapped := stderrors.Join(inner)

		got := ErrorToJSON(wrapped)
		require.NotNil(t, got)
		assert.Equal(t, errors.ErrTerm, got.Code)
	})
}

func TestErrorToJSON_Nil(t *testing.T) {
	assert.Nil(t, ErrorToJSON(nil))
}
