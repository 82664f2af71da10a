// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"scriptdeck/internal/host"
	"scriptdeck/internal/issue"
	"scriptdeck/internal/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Browse and run scripts interactively",
	Long: `Open the command tree in an interactive menu that follows the scripts
directory live: files and directories added, removed, or renamed on disk
appear in the menu within moments. Press r to force a refresh, o to open
the scripts location in the OS file browser.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(appOptions{withWatcher: true, ui: cmd.OutOrStdout()})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		if app.Watcher != nil {
			go func() {
				if err := app.Watcher.Run(ctx); err != nil && ctx.Err() == nil {
					app.Logger.Error("watcher stopped", "err", err)
				}
			}()
		} else if rendered, renderErr := issue.Get(issue.WatchSetupFailedId).Render("auto"); renderErr == nil {
			fmt.Fprint(cmd.ErrOrStderr(), rendered)
		}

		model := tui.New(tui.Deck{
			Sync:         app.Sync,
			ScriptsDir:   app.Config.ScriptsDir,
			Changes:      app.Changes(),
			OpenLocation: func() error { return host.OpenFileBrowser(app.Config.ScriptsDir) },
		})

		_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
		return err
	},
}
