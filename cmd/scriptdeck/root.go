// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"

	// verbose enables debug-level logging.
	verbose bool
	// cfgFile allows specifying a custom config file.
	cfgFile string
	// scriptsDirFlag overrides the configured scripts directory.
	scriptsDirFlag string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "scriptdeck"})

	rootCmd = &cobra.Command{
		Use:   "scriptdeck",
		Short: "A live command tree over your scripts directory",
		Long: TitleStyle.Render("scriptdeck") + SubtitleStyle.Render(" - a live command tree over your scripts directory") + `

scriptdeck mirrors a directory of scripts as a hierarchy of runnable
commands. Files become commands, subdirectories become submenus, and the
tree follows the directory in near-real-time as you add, remove, and edit
scripts. Each script runs through the interpreter registered for its file
extension.

` + SubtitleStyle.Render("Examples:") + `
  scriptdeck tree                      Show the command tree
  scriptdeck run Examples/Hello_World.js
  scriptdeck menu                      Browse and run scripts interactively
  scriptdeck open                      Open the scripts directory
  scriptdeck interpreters              List interpreters and extensions`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/scriptdeck/config.toml)")
	rootCmd.PersistentFlags().StringVar(&scriptsDirFlag, "scripts-dir", "", "scripts directory (overrides config)")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(interpretersCmd)
	rootCmd.AddCommand(docsCmd)
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the CLI through fang for styled help and errors.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
