package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apimgr/ghuser/src/client/apperr"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvToken, "ghp_secret")
	t.Setenv(EnvUsername, "octocat")
	t.Setenv(EnvAPIURL, "")

	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "ghp_secret", cfg.Token)
	assert.Equal(t, "octocat", cfg.Username)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv(EnvToken, "")
	t.Setenv(EnvUsername, "octocat")

	_, err := Load(newViper(t))
	require.Error(t, err)

	assert.Equal(t, apperr.KindCredential, apperr.KindOf(err))
	assert.Contains(t, err.Error(), EnvToken)
}

func TestLoadMissingUsername(t *testing.T) {
	t.Setenv(EnvToken, "ghp_secret")
	t.Setenv(EnvUsername, "  ")

	_, err := Load(newViper(t))
	require.Error(t, err)

	assert.Equal(t, apperr.KindCredential, apperr.KindOf(err))
	assert.Contains(t, err.Error(), EnvUsername)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(EnvToken, "from-env")
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvAPIURL, "")

	path := filepath.Join(t.TempDir(), "cli.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
github:
  token: from-file
  username: hubot
  api_url: https://ghe.example.com/api/v3
  timeout: 15
interactive:
  page_size: 0
`), 0600))

	v := newViper(t)
	require.NoError(t, ReadFile(v, path))

	cfg, err := Load(v)
	require.NoError(t, err)

	// Environment overrides the file
	assert.Equal(t, "from-env", cfg.Token)
	assert.Equal(t, "hubot", cfg.Username)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.APIURL)
	assert.Equal(t, 15, cfg.Timeout)
	assert.Equal(t, DefaultPageSize, cfg.PageSize)
}

func TestReadFileMissing(t *testing.T) {
	v := newViper(t)
	assert.NoError(t, ReadFile(v, filepath.Join(t.TempDir(), "nope.yml")))
}

func TestReadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("github: [unclosed"), 0600))

	assert.Error(t, ReadFile(newViper(t), path))
}

func TestDefaultFileParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.yml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultFile), 0600))

	v := newViper(t)
	require.NoError(t, ReadFile(v, path))
	assert.Equal(t, 10, v.GetInt("interactive.page_size"))
	assert.Equal(t, "warn", v.GetString("logging.level"))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("GITHUB_TOKEN=dotenv-token\nGITHUB_USERNAME=dotenv-user\n"), 0600))

	// Existing variables are not overwritten
	t.Setenv(EnvToken, "already-set")
	t.Setenv(EnvUsername, "")
	os.Unsetenv(EnvUsername)

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "already-set", os.Getenv(EnvToken))
	assert.Equal(t, "dotenv-user", os.Getenv(EnvUsername))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
