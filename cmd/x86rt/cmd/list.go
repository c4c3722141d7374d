package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runeforge/x86rt/internal/scenarios"
)

var listCmd = &cobra.Command{
	Use:     "list",
	GroupID: "scenario",
	Short:   "List the canonical scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range scenarios.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", s.Name, s.Description)
		}
	},
}
