package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "x86rt",
	Short: "A runtime x86-64 machine code assembler",
	Long:  `x86rt assembles typed mnemonic operations into machine code and, on request, runs the result directly.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "scenario",
		Title: "Canonical scenarios",
	})

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(assembleCmd)
	rootCmd.AddCommand(runCmd)
}
