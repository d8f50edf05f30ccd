package termhost

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"

	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

// DefaultShell returns the command line of the shell that reads commands
// from its standard input on platform p.
func DefaultShell(p mkrunkore.Platform) []string {
	if p == mkrunkore.Windows {
		return []string{"cmd.exe", "/Q"}
	}
	return []string{"sh"}
}

// Shell is a terminal session backed by a shell process. Text sent to the
// terminal is written to the shell's standard input. The shell's output goes
// to the environment's Out and Err, each line prefixed with the terminal's
// name.
type Shell struct {
	name string
	argv []string
	env  *mkrunkore.Env

	mu       sync.Mutex
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	out, err *mkrunkore.LineWriter
	closed   bool
	done     chan struct{}
	waitErr  error
}

var _ mkrunkore.Terminal = (*Shell)(nil)

func NewShell(name string, argv []string, env *mkrunkore.Env) *Shell {
	if env == nil {
		env = mkrunkore.DefaultEnv()
	}
	return &Shell{name: name, argv: argv, env: env}
}

func (s *Shell) Name() string { return s.name }

// Show starts the shell process if it is not yet running.
func (s *Shell) Show() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start()
}

func (s *Shell) start() error {
	switch {
	case s.cmd != nil:
		return nil
	case s.closed:
		return fmt.Errorf("terminal '%s' is closed", s.name)
	case len(s.argv) == 0:
		return fmt.Errorf("terminal '%s' has no shell", s.name)
	}
	log := s.env.Logger()
	xenv, err := s.env.ExecEnv()
	if err != nil {
		log.Warn(err.Error(), slog.String("terminal", s.name))
	}
	cmd := exec.Command(s.argv[0], s.argv[1:]...)
	cmd.Env = xenv
	prefix := "[" + s.name + "] "
	if s.env.Out != nil {
		s.out = mkrunkore.NewLineWriter(s.env.Out, prefix)
		cmd.Stdout = s.out
	}
	if s.env.Err != nil {
		s.err = mkrunkore.NewLineWriter(s.env.Err, prefix)
		cmd.Stderr = s.err
	}
	if s.stdin, err = cmd.StdinPipe(); err != nil {
		return err
	}
	log.Debug("start `shell` for `terminal`",
		slog.String("shell", cmd.String()),
		slog.String("terminal", s.name),
	)
	if err = cmd.Start(); err != nil {
		s.stdin = nil
		return err
	}
	s.cmd = cmd
	s.done = make(chan struct{})
	go func() {
		err := cmd.Wait()
		if s.out != nil {
			s.out.Flush()
		}
		if s.err != nil {
			s.err.Flush()
		}
		s.waitErr = err
		close(s.done)
	}()
	return nil
}

// SendText writes text and a newline to the shell. The shell is started if
// needed. SendText does not wait for the shell to execute the text.
func (s *Shell) SendText(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.start(); err != nil {
		return err
	}
	_, err := io.WriteString(s.stdin, text+"\n")
	return err
}

// Attach forwards in to the shell's input until in is exhausted. Then the
// shell's input is closed. Attach returns immediately.
func (s *Shell) Attach(in io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.start(); err != nil {
		return err
	}
	stdin := s.stdin
	go func() {
		if _, err := io.Copy(stdin, in); err != nil && !errors.Is(err, io.ErrClosedPipe) {
			s.env.Logger().Warn("forward input to `terminal`: `error`",
				slog.String("terminal", s.name),
				slog.String("error", err.Error()),
			)
		}
		s.closeInput()
	}()
	return nil
}

// Close ends the shell's input and waits for the shell to exit.
func (s *Shell) Close() error {
	s.closeInput()
	return s.Wait()
}

// Wait waits for the shell to exit. A shell that never started is done.
func (s *Shell) Wait() error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done == nil {
		return nil
	}
	<-done
	return s.waitErr
}

func (s *Shell) closeInput() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.stdin != nil {
		s.stdin.Close()
	}
}
