package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	presetVal string
	cfgVal    string
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run a built-in preset function and print its zeros and poles",
	Long: `Run one of the built-in preset functions (rational, waveguide,
graphene, empty, single-pole) and print the zeros and poles found.

A settings file written by 'grpf config' can be passed with --config to
override the preset's default budgets and tolerances.`,
	Run: doRun,
}

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&presetVal, "preset", "rational", "preset function to run")
	runCmd.Flags().StringVar(&cfgVal, "config", "", "settings file (optional, overrides preset defaults)")
}

func doRun(cmd *cobra.Command, args []string) {
	preset, err := findPreset(presetVal)
	check(err)

	p := preset.Params()
	if cfgVal != "" {
		p = loadParams(cfgVal)
	}

	zeros, poles, status := grpfRun(preset, p)
	if status.Failed() {
		fmt.Printf("grpf: %v\n", status)
		return
	}

	fmt.Printf("preset %q: %d zero(s), %d pole(s)\n", preset.Name, len(zeros), len(poles))
	for _, z := range zeros {
		fmt.Printf("  zero %v\n", z)
	}
	for _, z := range poles {
		fmt.Printf("  pole %v\n", z)
	}
	if status.Warning() {
		fmt.Printf("warning: %v\n", status)
	}
}
