package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "grpf",
	Short: "find zeros and poles of complex functions",
	Long: `grpf is the command-line application around the grpf engine:
	- run one of the built-in preset functions over a domain,
	- write a build settings file (YAML) and tweak its budgets and tolerances,
	- show what a settings file would do before running it.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(), once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
