// Package cmd implements the ghuser command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/apimgr/ghuser/src/client/api"
	"github.com/apimgr/ghuser/src/client/config"
	"github.com/apimgr/ghuser/src/client/logging"
	"github.com/apimgr/ghuser/src/client/metrics"
	"github.com/apimgr/ghuser/src/client/paths"
	"github.com/apimgr/ghuser/src/client/tui"
)

// interruptGrace is how long a cancelled command may take to unwind
// before the process exits anyway (a line prompt blocked on stdin
// never returns on its own).
const interruptGrace = 2 * time.Second

var (
	cfgFile      string
	tokenFlag    string
	usernameFlag string
	apiURLFlag   string
	output       string
	noColor      bool
	timeout      int

	cfg           *config.Config
	apiClient     *api.Client
	clientMetrics *metrics.Metrics
	closeLog      func() error

	// finishMu serializes finish between Execute and the interrupt watchdog
	finishMu sync.Mutex
)

var rootCmd = &cobra.Command{
	Use:   getBinaryName(),
	Short: "Search GitHub users and show their profiles",
	Long: `ghuser is an interactive terminal client for the GitHub users API.

Without a subcommand it opens a menu to search users or look up a profile.
GITHUB_TOKEN and GITHUB_USERNAME must be set (a .env file in the current
directory is read too).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor || os.Getenv("NO_COLOR") != "" {
			tui.DisableColor()
		}
		setupLogging()

		if skipClientInit(cmd) {
			return nil
		}
		return initClient()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context, which aborts in-flight requests.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		select {
		case <-done:
			return
		case <-ctx.Done():
		}
		select {
		case <-done:
		case <-time.After(interruptGrace):
			fmt.Fprintln(os.Stderr, "Error: interrupted")
			finish()
			os.Exit(130)
		}
	}()

	err := rootCmd.ExecuteContext(ctx)
	close(done)
	finish()
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVarP(&tokenFlag, "token", "t", "", "GitHub token (default $GITHUB_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&usernameFlag, "username", "u", "", "GitHub username (default $GITHUB_USERNAME)")
	rootCmd.PersistentFlags().StringVar(&apiURLFlag, "api-url", "", "GitHub API base URL")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: table, json, plain")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().IntVar(&timeout, "timeout", 0, "request timeout in seconds (0 = none)")

	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(shellCmd)
}

func initConfig() {
	v := viper.GetViper()
	config.SetDefaults(v)

	flags := rootCmd.PersistentFlags()
	v.BindPFlag("github.token", flags.Lookup("token"))
	v.BindPFlag("github.username", flags.Lookup("username"))
	v.BindPFlag("github.api_url", flags.Lookup("api-url"))
	v.BindPFlag("github.timeout", flags.Lookup("timeout"))

	path, err := paths.ResolveConfigPath(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	if err := config.ReadFile(v, path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

// setupLogging is non-fatal; the CLI works without a log file
func setupLogging() {
	if closeLog != nil {
		return
	}
	_, closeFn, err := logging.Setup(logging.FromViper(viper.GetViper()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not initialize log file: %v\n", err)
		return
	}
	closeLog = closeFn
}

// initClient validates the credentials and builds the API client
func initClient() error {
	c, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	cfg = c

	apiClient = api.NewClient(cfg.APIURL, cfg.Token, cfg.Username, cfg.Timeout)
	clientMetrics = metrics.New()
	clientMetrics.InstrumentClient(apiClient.HTTPClient)

	slog.Debug("client initialized", "api_url", apiClient.BaseURL, "username", cfg.Username)
	return nil
}

// finish flushes metrics and closes the log file
func finish() {
	finishMu.Lock()
	defer finishMu.Unlock()

	if clientMetrics != nil && cfg != nil && cfg.MetricsFile != "" {
		if err := clientMetrics.WriteTextfile(paths.ExpandHome(cfg.MetricsFile)); err != nil {
			slog.Warn("could not write metrics textfile", "path", cfg.MetricsFile, "error", err)
		}
	}
	if closeLog != nil {
		closeLog()
		closeLog = nil
	}
	clientMetrics = nil
}

// skipClientInit reports whether cmd runs without GitHub credentials
func skipClientInit(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "config", "version", "shell", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

func getBinaryName() string {
	return filepath.Base(os.Args[0])
}

func getOutputFormat() string {
	if output != "" {
		return output
	}
	if cfg != nil && cfg.OutputFormat != "" {
		return cfg.OutputFormat
	}
	return viper.GetString("output.format")
}

var errUnknownFormat = errors.New("unknown output format")
