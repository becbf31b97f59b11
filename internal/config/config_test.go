// ABOUTME: Tests for configuration loading.
// ABOUTME: Verifies defaults, file, environment, and flag precedence.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/notes/internal/store"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("NOTES_FILE", "")
	t.Setenv("NOTES_ID_STRATEGY", "")
	return dir
}

func TestDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "notes", "notes.json"), cfg.File)
	assert.Equal(t, store.IDStrategyLength, cfg.Strategy())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.Style)
	assert.Equal(t, 80, cfg.WordWrap)
}

func TestConfigPathFollowsXDG(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, filepath.Join(dir, "config", "notes", "config.yaml"), ConfigPath())
	assert.Equal(t, filepath.Dir(ConfigPath()), ConfigDir())
}

func TestLoadFromDefaultConfigFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(ConfigDir(), 0750))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("id_strategy: monotonic\nword_wrap: 100\n"), 0600))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, store.IDStrategyMonotonic, cfg.Strategy())
	assert.Equal(t, 100, cfg.WordWrap)
}

func TestExplicitConfigMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("file: /from/file.json\n"), 0600))
	t.Setenv("NOTES_FILE", "/from/env.json")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/from/env.json", cfg.File)
}

func TestFlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("NOTES_FILE", "/from/env.json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("file", "", "notes file")
	require.NoError(t, flags.Parse([]string{"--file", "/from/flag.json"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.json", cfg.File)
}

func TestInvalidStrategy(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id_strategy: random\n"), 0600))

	_, err := Load(path, nil)
	assert.Error(t, err)
}
