// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scriptdeck/internal/bootstrap"
	"scriptdeck/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the scripts directory and seed example scripts",
	Long: `Create the scripts directory if it does not exist yet and seed it with a
set of example scripts under Examples/. Existing files are never touched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if scriptsDirFlag != "" {
			cfg.ScriptsDir = scriptsDirFlag
		}

		if err := bootstrap.Ensure(cfg.ScriptsDir, logger); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("scripts directory ready: "+cfg.ScriptsDir))
		return nil
	},
}
