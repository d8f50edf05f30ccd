package mkrun

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"git.fractalqb.de/fractalqb/mkrun/mkfs"
	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

const (
	MsgNoEditor    = "No active editor found."
	MsgNoWorkspace = "File is not in a workspace folder. Cannot determine CMake target."
)

// Outcome tells how far one run of [Launcher.SetAndRunCurrentFileAsTarget] got.
type Outcome int

const (
	// Skipped means a precondition was not met. The user got a warning.
	Skipped Outcome = iota
	// Launched means the executable was handed to a terminal.
	Launched
	// Failed means building, locating or launching failed. The user got an
	// error message.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Launched:
		return "launched"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome-%d", int(o))
}

// Launcher builds and runs the CMake target of the file that is active in
// Host. A Launcher has no state that changes with its use. It can be used
// for any number of concurrent invocations.
type Launcher struct {
	Host     Host
	Builder  Builder
	Platform Platform
	Trace    *Trace // optional
	Env      *Env   // optional, only used for logging
}

// SetAndRunCurrentFileAsTarget derives the target name from the active file,
// builds it, locates its executable and runs it in a new terminal. Missing
// preconditions are reported as warnings. Any later failure, including a
// panic, is reported to the user as one error message and logged.
func (l *Launcher) SetAndRunCurrentFileAsTarget(ctx context.Context) Outcome {
	file, ok := l.Host.ActiveFile()
	if !ok {
		l.Host.ShowWarning(MsgNoEditor)
		return Skipped
	}
	root, ok := l.Host.WorkspaceRoot(file)
	fc := mkrunkore.FileContext{File: file, Root: root}
	if !ok || !fc.Contains() {
		l.Host.ShowWarning(MsgNoWorkspace)
		return Skipped
	}

	tr := l.Trace.Invocation("")
	done := tr.Stage(mkrunkore.StageResolve)
	target := fc.Target()
	done(nil)
	tr = tr.WithTarget(target)
	if rel, err := fc.Rel(); err == nil {
		tr.Info("`file` is `target` in `root`", "file", rel, "target", target, "root", root)
	}
	l.Host.ShowInfo("Attempting to set and run CMake target: " + target)

	if err := l.buildAndRun(ctx, tr, fc, target); err != nil {
		l.Host.ShowError("Failed to set or run CMake target: " + err.Error())
		l.Env.Logger().Error("run `target` failed with `error`",
			slog.String("target", target),
			slog.String("root", root),
			slog.Uint64("invocation", tr.ID()),
			slog.String("error", err.Error()),
		)
		return Failed
	}
	return Launched
}

func (l *Launcher) buildAndRun(ctx context.Context, tr *Trace, fc mkrunkore.FileContext, target string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = panicError(p)
		}
	}()
	if err = BuildTarget(ctx, tr, l.Host, l.Builder, fc.Root, target); err != nil {
		return err
	}

	done := tr.Stage(mkrunkore.StageLocate)
	exe, err := mkfs.Locate(fc.Root, target, l.Platform)
	done(err)
	if err != nil {
		return err
	}

	done = tr.Stage(mkrunkore.StageLaunch)
	defer func() {
		if p := recover(); p != nil {
			err = panicError(p)
		}
		done(err)
	}()
	term, err := l.Host.CreateTerminal("Run " + target)
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err = term.Show(); err != nil {
		return fmt.Errorf("show terminal '%s': %w", term.Name(), err)
	}
	return RunExecutable(term, exe, target, l.Platform)
}

func panicError(p any) error {
	switch p := p.(type) {
	case error:
		return p
	case string:
		return errors.New(p)
	}
	return errors.New(fmt.Sprint(p))
}

// BuildTarget asks b to build target and tells the user when it is done.
// A failed build is returned as one error that names the target.
func BuildTarget(ctx context.Context, tr *Trace, host Host, b Builder, root, target string) error {
	done := tr.Stage(mkrunkore.StageBuild)
	err := b.BuildTarget(ctx, root, target)
	done(err)
	if err != nil {
		return fmt.Errorf("build target '%s': %w", target, err)
	}
	host.ShowInfo("Built target: " + target)
	return nil
}

// RunExecutable changes term into the directory of exe and runs it. Whether
// the commands succeed is not observed.
func RunExecutable(term Terminal, exe, target string, p Platform) error {
	if err := term.SendText(mkrunkore.CdCommand(p, exe)); err != nil {
		return err
	}
	return term.SendText(mkrunkore.ExecCommand(p, target))
}
