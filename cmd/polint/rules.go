package main

import (
	"github.com/spf13/cobra"

	"polint/internal/diagfmt"
	"polint/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List all known rules",
	Long:  `List every known rule with its severity, whether it is enabled by default and whether it is an actual check.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		diagfmt.WriteRules(cmd.OutOrStdout(), rules.All())
		return nil
	},
}
