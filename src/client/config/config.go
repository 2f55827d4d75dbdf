// Package config loads CLI settings from the environment, an optional
// .env file and the YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/apimgr/ghuser/src/client/apperr"
)

const (
	EnvToken    = "GITHUB_TOKEN"
	EnvUsername = "GITHUB_USERNAME"
	EnvAPIURL   = "GITHUB_API_URL"

	DefaultAPIURL   = "https://api.github.com"
	DefaultPageSize = 10
)

// DefaultFile is written by "config init"
const DefaultFile = `# ghuser CLI configuration
github:
  api_url: https://api.github.com
  # token and username normally come from GITHUB_TOKEN / GITHUB_USERNAME
  timeout: 0

interactive:
  page_size: 10

output:
  format: table

logging:
  level: warn
  max_size: 10
  max_files: 5

metrics:
  textfile: ""
`

// Config holds the settings needed to run a command
type Config struct {
	Token        string
	Username     string
	APIURL       string
	Timeout      int
	PageSize     int
	OutputFormat string
	MetricsFile  string
}

// LoadDotEnv loads variables from the given files (".env" when none are
// given). Variables already in the environment win. Missing files are
// not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// SetDefaults registers default values and environment bindings on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("github.api_url", DefaultAPIURL)
	v.SetDefault("github.timeout", 0)
	v.SetDefault("interactive.page_size", DefaultPageSize)
	v.SetDefault("output.format", "table")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_files", 5)
	v.SetDefault("metrics.textfile", "")

	v.BindEnv("github.token", EnvToken)
	v.BindEnv("github.username", EnvUsername)
	v.BindEnv("github.api_url", EnvAPIURL)

	v.SetEnvPrefix("GHUSER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// ReadFile reads the YAML config at path into v. A missing file is not
// an error since every setting has a default or an env binding.
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load builds a Config from v. The token and username are required;
// a missing one is reported by its environment variable name.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Token:        strings.TrimSpace(v.GetString("github.token")),
		Username:     strings.TrimSpace(v.GetString("github.username")),
		APIURL:       v.GetString("github.api_url"),
		Timeout:      v.GetInt("github.timeout"),
		PageSize:     v.GetInt("interactive.page_size"),
		OutputFormat: v.GetString("output.format"),
		MetricsFile:  v.GetString("metrics.textfile"),
	}

	if cfg.Token == "" {
		return nil, apperr.Credential(EnvToken)
	}
	if cfg.Username == "" {
		return nil, apperr.Credential(EnvUsername)
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Timeout < 0 {
		cfg.Timeout = 0
	}
	return cfg, nil
}
