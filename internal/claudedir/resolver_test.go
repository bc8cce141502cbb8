package claudedir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionID = "abc12345-1234-5678-9abc-def012345678"

// writeProjectIndex creates projectsDir/<flattened>/ containing one file
// prefixed with the session id.
func writeProjectIndex(t *testing.T, projectsDir, flattened, sessionID string) {
	t.Helper()
	dir := filepath.Join(projectsDir, flattened)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, sessionID+".jsonl"), []byte("{}\n"), 0o644))
}

func TestResolverFindsOwningProject(t *testing.T) {
	projectsDir := t.TempDir()
	writeProjectIndex(t, projectsDir, "-home-alice-proj", testSessionID)
	writeProjectIndex(t, projectsDir, "-home-alice-other", "ffffffff-0000-0000-0000-000000000000")

	r, err := NewResolver(projectsDir)
	require.NoError(t, err)

	path, ok := r.Resolve(testSessionID)
	require.True(t, ok)
	assert.Equal(t, "/home/alice/proj", path)
}

func TestResolverUnknownSession(t *testing.T) {
	projectsDir := t.TempDir()
	writeProjectIndex(t, projectsDir, "-home-alice-proj", testSessionID)

	r, err := NewResolver(projectsDir)
	require.NoError(t, err)

	_, ok := r.Resolve("00000000-dead-beef-0000-000000000000")
	assert.False(t, ok)
}

func TestResolverEmptyID(t *testing.T) {
	r, err := NewResolver(t.TempDir())
	require.NoError(t, err)

	_, ok := r.Resolve("")
	assert.False(t, ok)
}

func TestResolverMissingProjectsDir(t *testing.T) {
	r, err := NewResolver(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)

	_, ok := r.Resolve(testSessionID)
	assert.False(t, ok)
}
