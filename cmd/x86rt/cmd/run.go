package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/runeforge/x86rt/executor"
	"github.com/runeforge/x86rt/internal/scenarios"
)

var runCmd = &cobra.Command{
	Use:     "run <scenario> <argument>",
	GroupID: "scenario",
	Short:   "Assemble a canonical scenario, map it executable, and run it",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenarios.Find(args[0])
		if err != nil {
			return err
		}
		arg, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid argument %q: %w", args[1], err)
		}

		a := s.Build()
		prog, err := executor.Map(a.Buffer())
		if err != nil {
			return err
		}
		defer prog.Release()

		result := prog.Call(arg)
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", result)
		return nil
	},
}
