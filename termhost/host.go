// Package termhost lets mkrun run from a command line. The "active editor" is
// the file named by the user, workspaces are configured directories or the
// enclosing git worktree, and terminals are shell processes attached to the
// console.
package termhost

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-git/go-git/v5"

	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

var (
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

type Host struct {
	// File is the file the user wants to run. Relative paths are relative to
	// the working directory.
	File string
	// Roots are the workspace root directories. If empty, the git worktree
	// that contains File is the workspace.
	Roots []string
	// Shell is the command line of the shell used for terminals. Empty means
	// DefaultShell(Platform).
	Shell    []string
	Platform mkrunkore.Platform
	// Env is passed to terminals. Its In is forwarded to the terminals by
	// Wait if Interactive is set.
	Env         *mkrunkore.Env
	Interactive bool
	// Notes receives notifications for the user. Nil means os.Stderr.
	Notes io.Writer

	mu    sync.Mutex
	terms []*Shell
}

var _ mkrunkore.Host = (*Host)(nil)

func (h *Host) ActiveFile() (string, bool) {
	if h.File == "" {
		return "", false
	}
	file, err := filepath.Abs(h.File)
	if err != nil {
		return "", false
	}
	return file, true
}

// WorkspaceRoot returns the longest of the configured roots that contains
// file. Without configured roots the root of the git worktree is used.
func (h *Host) WorkspaceRoot(file string) (string, bool) {
	if len(h.Roots) == 0 {
		return GitWorktree(file)
	}
	var root string
	for _, r := range h.Roots {
		r, err := filepath.Abs(r)
		if err != nil {
			continue
		}
		fc := mkrunkore.FileContext{File: file, Root: r}
		if fc.Contains() && len(r) > len(root) {
			root = r
		}
	}
	return root, root != ""
}

// GitWorktree returns the root of the git worktree that contains path.
func GitWorktree(path string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(filepath.Dir(path), &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", false
	}
	return wt.Filesystem.Root(), true
}

func (h *Host) CreateTerminal(name string) (mkrunkore.Terminal, error) {
	argv := h.Shell
	if len(argv) == 0 {
		argv = DefaultShell(h.Platform)
	}
	env := h.Env
	if env == nil {
		env = mkrunkore.DefaultEnv()
	}
	sh := NewShell(name, argv, env.Sub())
	h.mu.Lock()
	h.terms = append(h.terms, sh)
	h.mu.Unlock()
	return sh, nil
}

// Terminals returns the terminals created so far.
func (h *Host) Terminals() []*Shell {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*Shell(nil), h.terms...)
}

// Wait hands the user's input to the last terminal, if Interactive, and
// waits for all terminals to end. Without Interactive the terminals' input
// is closed, so they end after the commands sent to them.
func (h *Host) Wait() error {
	terms := h.Terminals()
	interactive := h.Interactive && h.Env != nil && h.Env.In != nil
	var errs []error
	for i, t := range terms {
		var err error
		if interactive && i == len(terms)-1 {
			if err = t.Attach(h.Env.In); err == nil {
				err = t.Wait()
			}
		} else {
			err = t.Close()
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("terminal '%s': %w", t.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (h *Host) ShowInfo(msg string) { h.note(InfoStyle, "ℹ", msg) }

func (h *Host) ShowWarning(msg string) { h.note(WarningStyle, "⚠", msg) }

func (h *Host) ShowError(msg string) { h.note(ErrorStyle, "✘", msg) }

func (h *Host) note(style lipgloss.Style, icon, msg string) {
	w := h.Notes
	if w == nil {
		w = os.Stderr
	}
	msg = strings.TrimRight(msg, "\n")
	fmt.Fprintln(w, style.Render(icon+" "+msg))
}
