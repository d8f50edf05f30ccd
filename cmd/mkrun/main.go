package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"git.fractalqb.de/fractalqb/mkrun"
	"git.fractalqb.de/fractalqb/mkrun/internal/config"
	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

var (
	configFile string
	workspaces []string
	logFlag    string
	platform   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mkrun [file]",
	Short: "Build and run the CMake target of a source file",
	Long: `mkrun derives a CMake target from a source file, builds it and runs
the executable in a shell. The target of dir/file.ext is dir_file, e.g.
list/876.cc is built as target list_876.

After the build the executable is searched in the directories build,
out/build, cmake-build-debug and cmake-build-release of the workspace.

Examples:
  mkrun list/876.cc
  mkrun run -w ~/src/algo --interactive list/876.cc
  mkrun target list/876.cc
  mkrun locate --all list/876.cc`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRun,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "YAML config file (default "+config.DefaultFile+" if present)")
	pf.StringArrayVarP(&workspaces, "workspace", "w", nil, "Workspace root directory, can be repeated (default: git worktree of file)")
	pf.StringVar(&logFlag, "log", "", "Log level: off, warn, info or debug")
	pf.StringVar(&platform, "platform", "", "Platform conventions: auto, posix or windows")
	addRunFlags(rootCmd)
}

// setup is shared by all commands. It resolves the configuration, logging
// and the platform once.
type setup struct {
	cfg      *config.Config
	tracer   *mkrun.WriteTracer
	env      *mkrunkore.Env
	platform mkrunkore.Platform
}

func newSetup(cmd *cobra.Command) (*setup, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if len(workspaces) > 0 {
		cfg.Workspaces = workspaces
	}
	if logFlag != "" {
		cfg.Log = logFlag
	}
	if platform != "" {
		cfg.Platform = platform
	}
	s := &setup{cfg: cfg, tracer: mkrun.DefaultTracer()}
	s.tracer.W = cmd.ErrOrStderr()
	if err = s.tracer.ParseLogFlag(cfg.Log); err != nil {
		return nil, err
	}
	if s.platform, err = mkrunkore.ParsePlatform(cfg.Platform); err != nil {
		return nil, err
	}
	s.env = mkrunkore.DefaultEnv()
	s.env.Out = cmd.OutOrStdout()
	s.env.Err = cmd.ErrOrStderr()
	s.env.In = cmd.InOrStdin()
	s.env.Log = slog.New(slog.NewTextHandler(s.env.Err, &slog.HandlerOptions{
		Level: s.tracer.SlogLevel(),
	}))
	return s, nil
}

func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mkrun:", err)
		os.Exit(1)
	}
}
