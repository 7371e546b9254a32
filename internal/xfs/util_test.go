package xfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "campus", "roster.yaml"), ExpandTilde("~/campus/roster.yaml"))
	assert.Equal(t, "/etc/campus/roster.yaml", ExpandTilde("/etc/campus/roster.yaml"))
}

func TestExpandTilde_HomeOnly(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, "~user/roster.yaml", ExpandTilde("~user/roster.yaml"))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")

	assert.False(t, Exists(path))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	assert.True(t, Exists(path))
}
