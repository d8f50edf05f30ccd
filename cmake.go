package mkrun

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strconv"

	"git.fractalqb.de/fractalqb/mkrun/mkfs"
	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

// CMakeBuild builds targets by running 'cmake --build'. It does not look into
// CMakeLists.txt or the build output. Only cmake's exit status counts.
type CMakeBuild struct {
	// Exe is the cmake executable. Empty means "cmake" from PATH.
	Exe string
	// BuildDir is the cmake binary directory relative to the workspace root.
	// Empty means "build".
	BuildDir string
	// BuildType is passed as --config to the build and as CMAKE_BUILD_TYPE
	// to configure.
	BuildType string
	Generator string
	// Parallel sets the number of concurrent build jobs if > 0.
	Parallel int
	// Configure runs 'cmake -S -B' first if the build directory has no
	// CMakeCache.txt.
	Configure bool

	Env *Env
}

var _ mkrunkore.Builder = (*CMakeBuild)(nil)

func (cb *CMakeBuild) exe() string {
	if cb.Exe == "" {
		return "cmake"
	}
	return cb.Exe
}

func (cb *CMakeBuild) binDir(root string) string {
	if cb.BuildDir == "" {
		return filepath.Join(root, "build")
	}
	if filepath.IsAbs(cb.BuildDir) {
		return cb.BuildDir
	}
	return filepath.Join(root, cb.BuildDir)
}

// BuildArgs returns the cmake arguments to build target in root.
func (cb *CMakeBuild) BuildArgs(root, target string) []string {
	args := []string{"--build", cb.binDir(root), "--target", target}
	if cb.BuildType != "" {
		args = append(args, "--config", cb.BuildType)
	}
	if cb.Parallel > 0 {
		args = append(args, "--parallel", strconv.Itoa(cb.Parallel))
	}
	return args
}

// ConfigureArgs returns the cmake arguments to configure the build
// directory of root.
func (cb *CMakeBuild) ConfigureArgs(root string) []string {
	args := []string{"-S", root, "-B", cb.binDir(root)}
	if cb.Generator != "" {
		args = append(args, "-G", cb.Generator)
	}
	if cb.BuildType != "" {
		args = append(args, "-DCMAKE_BUILD_TYPE="+cb.BuildType)
	}
	return args
}

func (cb *CMakeBuild) NeedsConfigure(root string) bool {
	return cb.Configure && !mkfs.IsFile(filepath.Join(cb.binDir(root), "CMakeCache.txt"))
}

func (cb *CMakeBuild) BuildTarget(ctx context.Context, root, target string) error {
	env := cb.Env
	if env == nil {
		env = DefaultEnv()
	}
	if cb.NeedsConfigure(root) {
		if err := cb.run(ctx, env, root, cb.ConfigureArgs(root)); err != nil {
			return fmt.Errorf("configure %s: %w", root, err)
		}
	}
	return cb.run(ctx, env, root, cb.BuildArgs(root, target))
}

func (cb *CMakeBuild) run(ctx context.Context, env *Env, dir string, args []string) error {
	log := env.Logger()
	xenv, err := env.ExecEnv()
	if err != nil {
		log.Warn(err.Error(), slog.String("cmd", cb.exe()))
	}
	cmd := exec.CommandContext(ctx, cb.exe(), args...)
	cmd.Dir = dir
	cmd.Env = xenv
	if env.Out != nil {
		out := mkrunkore.NewLineWriter(env.Out, "cmake| ")
		defer out.Flush()
		cmd.Stdout = out
	}
	if env.Err != nil {
		errw := mkrunkore.NewLineWriter(env.Err, "cmake| ")
		defer errw.Flush()
		cmd.Stderr = errw
	}
	log.Debug("exec `cmd` in `dir`",
		slog.String("cmd", cmd.String()),
		slog.String("dir", cmd.Dir),
	)
	if err = cmd.Run(); err != nil {
		log.Error("failed `cmd` in `dir` with `error`",
			slog.String("cmd", cmd.String()),
			slog.String("dir", cmd.Dir),
			slog.String("error", err.Error()),
		)
	}
	return err
}
