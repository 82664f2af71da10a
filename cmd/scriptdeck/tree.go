// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scriptdeck/internal/menu"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the command tree",
	Long:  "Print the command tree mirroring the scripts directory, one synchronization pass deep.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(appOptions{ui: cmd.OutOrStdout()})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render(app.Config.ScriptsDir))
		fmt.Fprint(cmd.OutOrStdout(), renderTree(app.Sync.Root()))
		return nil
	},
}

// renderTree renders the tree in display order, groups first marked with a
// trailing slash, indented two spaces per level.
func renderTree(root *menu.Group) string {
	var b strings.Builder
	root.Walk(func(path string, n menu.Node) {
		depth := strings.Count(path, "/")
		indent := strings.Repeat("  ", depth)
		switch n.(type) {
		case *menu.Group:
			b.WriteString(indent + GroupStyle.Render(n.Name()+"/") + "\n")
		case *menu.Leaf:
			b.WriteString(indent + n.Name() + "\n")
		}
	})
	return b.String()
}
