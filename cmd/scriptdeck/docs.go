// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Render the scripts directory README",
	Long:  "Render the README.md at the scripts root, when present, for a quick overview of what the scripts collection offers.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(appOptions{ui: cmd.OutOrStdout()})
		if err != nil {
			return err
		}

		path := filepath.Join(app.Config.ScriptsDir, "README.md")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("no README.md in "+app.Config.ScriptsDir))
				return nil
			}
			return err
		}

		rendered, err := glamour.Render(string(data), "auto")
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}
