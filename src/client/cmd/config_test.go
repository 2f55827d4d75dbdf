package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCommandsNeedNoCredentials(t *testing.T) {
	resetState(t)
	t.Setenv("GITHUB_TOKEN", "")
	path := filepath.Join(t.TempDir(), "cli.yml")

	out, err := execute(t, "", "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created config file")

	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "", "--config", path, "config", "init")
	assert.Error(t, err, "init refuses to overwrite")
}

func TestConfigSetAndGet(t *testing.T) {
	resetState(t)
	path := filepath.Join(t.TempDir(), "cli.yml")

	out, err := execute(t, "", "--config", path, "config", "set", "interactive.page_size", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Set interactive.page_size = 25")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "page_size")
	assert.NotContains(t, string(data), "test-token", "env values are not persisted")

	resetState(t)
	out, err = execute(t, "", "--config", path, "config", "get", "interactive.page_size")
	require.NoError(t, err)
	assert.Equal(t, "25\n", out)
}

func TestConfigShowRedactsToken(t *testing.T) {
	resetState(t)
	path := filepath.Join(t.TempDir(), "cli.yml")
	require.NoError(t, os.WriteFile(path, []byte("github:\n  token: file-secret\n"), 0600))
	t.Setenv("GITHUB_TOKEN", "")

	out, err := execute(t, "", "--config", path, "config", "show")

	require.NoError(t, err)
	assert.NotContains(t, out, "file-secret")
	assert.Contains(t, out, "********")
}

func TestConfigGetRedactsToken(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"exact key", "github.token"},
		{"mixed case key", "GitHub.Token"},
		{"parent key", "github"},
		{"parent key upper case", "GITHUB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetState(t)
			path := filepath.Join(t.TempDir(), "cli.yml")
			require.NoError(t, os.WriteFile(path, []byte("github:\n  token: file-secret\n  username: filer\n"), 0600))

			out, err := execute(t, "", "--config", path, "config", "get", tt.key)

			require.NoError(t, err)
			assert.NotContains(t, out, "file-secret")
			assert.NotContains(t, out, "test-token")
			assert.Contains(t, out, "********")
		})
	}
}

func TestConfigGetParentKeepsOtherValues(t *testing.T) {
	resetState(t)
	path := filepath.Join(t.TempDir(), "cli.yml")
	require.NoError(t, os.WriteFile(path, []byte("github:\n  token: file-secret\n  username: filer\n"), 0600))

	out, err := execute(t, "", "--config", path, "config", "get", "github")

	require.NoError(t, err)
	assert.Contains(t, out, "filer")
}

func TestConfigGetUnknownKey(t *testing.T) {
	resetState(t)

	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "cli.yml"), "config", "get", "nope.nothing")

	assert.ErrorContains(t, err, "key not found: nope.nothing")
}

func TestVersionCommand(t *testing.T) {
	resetState(t)

	out, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "Version:")
	assert.Contains(t, out, "https://api.github.com")
	assert.Contains(t, out, "tester ghuser/")
}
