// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scriptdeck/internal/issue"
	"scriptdeck/internal/menu"
	"scriptdeck/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run <name>...",
	Short: "Run one script from the command tree",
	Long: `Run one script by its tree path. Segments may be given as separate
arguments or joined with slashes:

  scriptdeck run Examples/Hello_World.js
  scriptdeck run Examples Hello_World.js`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(appOptions{ui: cmd.OutOrStdout()})
		if err != nil {
			return err
		}

		segments := splitTreePath(args)
		node := app.Sync.Root().Resolve(segments...)
		if node == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render(
				fmt.Sprintf("no such script: %s", strings.Join(segments, "/"))))
			return fmt.Errorf("no such script: %s", strings.Join(segments, "/"))
		}

		leaf, ok := node.(*menu.Leaf)
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render(
				fmt.Sprintf("%s is a group, not a script", strings.Join(segments, "/"))))
			return fmt.Errorf("%s is a group", strings.Join(segments, "/"))
		}

		if err := leaf.Invoke(cmd.Context()); err != nil {
			reportScriptError(cmd, err)
			return err
		}
		return nil
	},
}

// splitTreePath normalizes run arguments into tree path segments.
func splitTreePath(args []string) []string {
	var segments []string
	for _, a := range args {
		for _, seg := range strings.Split(a, "/") {
			if seg != "" {
				segments = append(segments, seg)
			}
		}
	}
	return segments
}

// reportScriptError prints the underlying error, then the rendered issue
// explanation matching its type.
func reportScriptError(cmd *cobra.Command, err error) {
	fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render(err.Error()))

	var id issue.Id
	switch {
	case errors.Is(err, script.ErrUnsupportedType):
		id = issue.UnsupportedScriptTypeId
	case errors.Is(err, script.ErrExecFailed):
		id = issue.ScriptExecutionFailedId
	default:
		return
	}
	if rendered, renderErr := issue.Get(id).Render("auto"); renderErr == nil {
		fmt.Fprint(cmd.ErrOrStderr(), rendered)
	}
}
