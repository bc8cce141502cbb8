package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 30*time.Second, cfg.ForceRefresh())
	assert.Equal(t, time.Second, cfg.Debounce())
	assert.Equal(t, 20, cfg.SessionLimit)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
project_sort = "todos"
session_limit = 5
force_refresh_seconds = 10
debounce_millis = 250
todos_dir = "/srv/claude/todos"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "todos", cfg.ProjectSort)
	assert.Equal(t, 5, cfg.SessionLimit)
	assert.Equal(t, 10*time.Second, cfg.ForceRefresh())
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce())
	assert.Equal(t, "/srv/claude/todos", cfg.TodosDir)
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`session_limit = 3`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.SessionLimit)
	assert.Equal(t, Default().ForceRefreshSeconds, cfg.ForceRefreshSeconds)
	assert.Equal(t, Default().ProjectSort, cfg.ProjectSort)
}

func TestLoadFileExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`todos_dir = "~/claude-todos"`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "claude-todos"), cfg.TodosDir)
}

func TestLoadFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`session_limit = "not a number`), 0o644))

	cfg, err := LoadFile(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg, "corrupt config falls back to defaults")
}

func TestLoadFileRejectsNonPositiveValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
session_limit = -1
force_refresh_seconds = 0
debounce_millis = -100
`), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().SessionLimit, cfg.SessionLimit)
	assert.Equal(t, Default().ForceRefreshSeconds, cfg.ForceRefreshSeconds)
	assert.Equal(t, Default().DebounceMillis, cfg.DebounceMillis)
}
