package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratatop/internal/config"
	"ratatop/internal/errors"
)

func TestInit_NonInteractive(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	err := Init(InitOptions{NonInteractive: true})
	require.NoError(t, err)

	path := filepath.Join(dir, config.ConfigFileName)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "refresh: 2s")
	assert.Contains(t, string(data), "# ratatop configuration")

	// The generated file must load and validate cleanly
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Refresh)
}

func TestInit_ExistingConfigWithoutForce(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, Init(InitOptions{NonInteractive: true}))

	err := Init(InitOptions{NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, Init(InitOptions{NonInteractive: true}))
	require.NoError(t, Init(InitOptions{NonInteractive: true, Overwrite: true}))
}
