// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptdeck/internal/host"
	"scriptdeck/internal/issue"
)

// openLocation is indirected so tests can stub the OS file browser.
var openLocation = host.OpenFileBrowser

var openCmd = &cobra.Command{
	Use:           "open",
	Short:         "Open the scripts directory in the OS file browser",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(appOptions{ui: cmd.OutOrStdout()})
		if err != nil {
			return err
		}

		if err := openLocation(app.Config.ScriptsDir); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render(err.Error()))
			if rendered, renderErr := issue.Get(issue.ScriptsDirOpenFailedId).Render("auto"); renderErr == nil {
				fmt.Fprint(cmd.ErrOrStderr(), rendered)
			}
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("opened "+app.Config.ScriptsDir))
		return nil
	},
}
