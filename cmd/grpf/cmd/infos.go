package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infosCmd represents the infos command.
var infosCmd = &cobra.Command{
	Use:   "infos [CONFIG]",
	Short: "show the settings and presets a run would use",
	Long: `Print the budgets and tolerances a settings file describes (or the
defaults, if none is given), and list the built-in preset functions
available to 'grpf run --preset'.`,
	Run: doInfos,
}

func init() {
	RootCmd.AddCommand(infosCmd)
}

func doInfos(cmd *cobra.Command, args []string) {
	path := ""
	if len(args) >= 1 {
		path = args[0]
	}
	p := loadParams(path)

	fmt.Println("settings:")
	fmt.Printf("  max_iterations:  %d\n", p.MaxIterations)
	fmt.Printf("  max_nodes:       %d\n", p.MaxNodes)
	fmt.Printf("  skinny_triangle: %g\n", p.SkinnyTriangle)
	fmt.Printf("  tess_size_hint:  %d\n", p.TessSizeHint)
	fmt.Printf("  tolerance:       %g\n", p.Tolerance)
	fmt.Printf("  multithreading:  %v\n", p.Multithreading)

	if s := p.Validate(); s != 0 {
		fmt.Printf("warning: %v\n", s)
	}

	fmt.Println("presets:")
	for _, pr := range presets {
		fmt.Printf("  %-12s %s\n", pr.Name, pr.Description)
	}
}
