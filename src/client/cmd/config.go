package cmd

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/apimgr/ghuser/src/client/config"
	"github.com/apimgr/ghuser/src/client/paths"
)

const redacted = "********"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := viper.AllSettings()
		redactToken(settings)

		out, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		configPath, err := getConfigPath()
		if err != nil {
			return err
		}

		// Write only what is in the file, not env or flag values
		file := viper.New()
		if err := config.ReadFile(file, configPath); err != nil {
			return err
		}
		file.Set(key, value)

		if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
			return err
		}
		if err := file.WriteConfigAs(configPath); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := strings.ToLower(args[0])
		if !viper.IsSet(key) {
			return fmt.Errorf("key not found: %s", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), redactedValue(key, viper.Get(key)))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := getConfigPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("config already exists: %s", configPath)
		}
		if err := os.MkdirAll(filepath.Dir(configPath), 0700); err != nil {
			return err
		}
		if err := os.WriteFile(configPath, []byte(config.DefaultFile), 0600); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", configPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configInitCmd)
}

func getConfigPath() (string, error) {
	return paths.ResolveConfigPath(cfgFile)
}

// redactedValue masks the token whether key names it directly or one of
// its parents. key must be lowercase.
func redactedValue(key string, value any) any {
	switch key {
	case "github.token":
		return redacted
	case "github":
		if gh, ok := value.(map[string]any); ok {
			gh = maps.Clone(gh)
			redactToken(map[string]any{"github": gh})
			return gh
		}
	}
	return value
}

func redactToken(settings map[string]any) {
	gh, ok := settings["github"].(map[string]any)
	if !ok {
		return
	}
	if tok, ok := gh["token"].(string); ok && tok != "" {
		gh["token"] = redacted
	}
}
