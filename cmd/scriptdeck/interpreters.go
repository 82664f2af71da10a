// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var interpretersCmd = &cobra.Command{
	Use:   "interpreters",
	Short: "List registered interpreters and their extensions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(appOptions{ui: cmd.OutOrStdout()})
		if err != nil {
			return err
		}

		for _, ip := range app.Registry.Interpreters() {
			exts := make([]string, 0, len(ip.Extensions()))
			for _, e := range ip.Extensions() {
				exts = append(exts, "."+strings.ToLower(e))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
				TitleStyle.Render(ip.Name()), SubtitleStyle.Render(strings.Join(exts, " ")))
		}
		return nil
	},
}
