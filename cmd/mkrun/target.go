package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

// targetCmd represents the target command
var targetCmd = &cobra.Command{
	Use:   "target <file>",
	Short: "Print the CMake target name of a source file",
	Long: `Target prints the name of the CMake target that mkrun builds for
file. Nothing is built and no workspace is needed.

Examples:
  mkrun target list/876.cc   # prints list_876`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mkrunkore.TargetName(file))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(targetCmd)
}
