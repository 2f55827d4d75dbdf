// Package main is the ghuser entry point
package main

import (
	"fmt"

	"github.com/apimgr/ghuser/src/client/config"
	"github.com/apimgr/ghuser/src/client/paths"
)

// InitCLI prepares the process environment before any command runs:
// 1. Load .env from the working directory (existing variables win)
// 2. Ensure config and log directories exist with correct permissions
func InitCLI() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}

	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("init directories: %w", err)
	}

	return nil
}
