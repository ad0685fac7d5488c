package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevDir(t *testing.T) {
	tempRoot := os.TempDir()
	devBase := filepath.Join(tempRoot, DevDirName)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"Empty Path", "", filepath.Join(devBase, "default")},
		{"Current Dir", ".", filepath.Join(devBase, "default")},
		{"Relative Name", "my-notes", filepath.Join(devBase, "my-notes")},
		{"Clean Name", "../bad/path", filepath.Join(devBase, "path")},
		{"User Config", "/home/someone/.config/notes", filepath.Join(devBase, "notes")},
		{"Exception For Temp Dir", filepath.Join(tempRoot, "my-test"), filepath.Join(tempRoot, "my-test")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DevDir(tt.path))
		})
	}
}

func TestIsDevRun(t *testing.T) {
	// Test binaries end in .test.
	assert.True(t, IsDevRun())
}

func TestResolveDir_DevRun(t *testing.T) {
	withDevRun(t, true)
	t.Setenv("XDG_CONFIG_HOME", "/home/someone/.config")

	got, err := ResolveDir("", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.TempDir(), DevDirName, "notes"), got)

	// Explicit paths are never redirected.
	explicit := "/srv/profile"
	got, err = ResolveDir(explicit, "")
	require.NoError(t, err)
	assert.Equal(t, explicit, got)
}
