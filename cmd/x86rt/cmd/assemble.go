package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runeforge/x86rt/internal/scenarios"
)

var assembleCmd = &cobra.Command{
	Use:     "assemble <scenario>",
	GroupID: "scenario",
	Short:   "Assemble a canonical scenario and print its machine code as hex",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenarios.Find(args[0])
		if err != nil {
			return err
		}
		a := s.Build()
		fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(a.Buffer().Bytes()))
		return nil
	},
}
