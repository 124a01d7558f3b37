package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EP-Guy/grpf"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a settings file",
	Long: `Write a settings file in YAML format, prefilled with default values.

If FILE is not provided, 'grpf.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "grpf.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, grpf.NewParams()))
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
