package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/mkrun/mkfs"
	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
	"git.fractalqb.de/fractalqb/mkrun/termhost"
)

var locateAll bool

// locateCmd represents the locate command
var locateCmd = &cobra.Command{
	Use:   "locate <file>",
	Short: "Print the path of the executable built for a source file",
	Long: `Locate prints the path of the executable that mkrun would run for
file without building it. With --all every candidate directory is listed
with whether it has the executable.

Examples:
  mkrun locate list/876.cc
  mkrun locate --all -w ~/src/algo list/876.cc`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
	locateCmd.Flags().BoolVarP(&locateAll, "all", "a", false, "List all candidate directories")
}

func runLocate(cmd *cobra.Command, args []string) error {
	s, err := newSetup(cmd)
	if err != nil {
		return err
	}
	host := &termhost.Host{File: args[0], Roots: s.cfg.Workspaces}
	file, _ := host.ActiveFile()
	root, ok := host.WorkspaceRoot(file)
	fc := mkrunkore.FileContext{File: file, Root: root}
	if !ok || !fc.Contains() {
		return errors.New("file is not in a workspace folder")
	}
	target := fc.Target()
	out := cmd.OutOrStdout()
	if !locateAll {
		exe, err := mkfs.Locate(root, target, s.platform)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, exe)
		return nil
	}
	hits := mkfs.Survey(root, target, s.platform)
	for i := range mkfs.CandidateDirs {
		mark := "-"
		if hits.Test(uint(i)) {
			mark = "+"
		}
		fmt.Fprintf(out, "%s %s\n", mark, mkfs.ExePath(root, i, target, s.platform))
	}
	if first, ok := hits.NextSet(0); ok && hits.Count() > 1 {
		mkrunkore.NewTrace(s.tracer).Invocation(target).Warn(
			"`target` has several executables, mkrun runs the one in `dir`",
			"target", target,
			"dir", mkfs.CandidateDirs[first],
		)
	}
	return nil
}
