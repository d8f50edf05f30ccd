package main

import (
	"errors"

	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/mkrun"
	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
	"git.fractalqb.de/fractalqb/mkrun/termhost"
)

var (
	interactive bool
	buildType   string
	configure   bool
)

var errFailed = errors.New("build or run failed")

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Build the file's target and run it in a shell",
	Long: `Run builds the CMake target of file with 'cmake --build' and runs
the resulting executable in a new shell. Without --interactive the shell
ends when the executable ends and the executable's standard input is empty.

Examples:
  mkrun run list/876.cc
  mkrun run -i --build-type Debug list/876.cc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Forward standard input to the shell")
	cmd.Flags().StringVar(&buildType, "build-type", "", "CMake build type, e.g. Debug or Release")
	cmd.Flags().BoolVar(&configure, "configure", false, "Configure the build directory if needed")
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := newSetup(cmd)
	if err != nil {
		return err
	}
	file := fileArg(args)
	if cmd.Flags().Changed("interactive") {
		s.cfg.Interactive = interactive
	}
	if buildType != "" {
		s.cfg.BuildType = buildType
	}
	if cmd.Flags().Changed("configure") {
		s.cfg.Configure = configure
	}

	host := &termhost.Host{
		File:        file,
		Roots:       s.cfg.Workspaces,
		Shell:       s.cfg.ShellArgs(),
		Platform:    s.platform,
		Env:         s.env,
		Interactive: s.cfg.Interactive,
		Notes:       cmd.ErrOrStderr(),
	}
	builder := &mkrun.CMakeBuild{
		Exe:       s.cfg.CMake,
		BuildDir:  s.cfg.BuildDir,
		BuildType: s.cfg.BuildType,
		Generator: s.cfg.Generator,
		Parallel:  s.cfg.Parallel,
		Configure: s.cfg.Configure,
		Env:       s.env,
	}
	launcher := mkrun.NewLauncher(host, builder, mkrunkore.NewTrace(s.tracer))
	launcher.Platform = s.platform
	launcher.Env = s.env
	outcome := launcher.SetAndRunCurrentFileAsTarget(cmd.Context())
	if err := host.Wait(); err != nil {
		s.env.Logger().Debug("terminal ended with `error`", "error", err.Error())
	}
	if outcome == mkrun.Failed {
		return errFailed
	}
	return nil
}
