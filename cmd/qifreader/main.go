package main

import (
	"fmt"
	"os"

	"github.com/cleared-dev/qifreader/internal/commands"
)

var (
	// version will be set via ldflags during build.
	version = "dev"
	// commit will be set via ldflags during build.
	commit = "none"
	// date will be set via ldflags during build.
	date = "unknown"
)

func main() {
	rootCmd := commands.NewRootCommand(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
