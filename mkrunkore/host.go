package mkrunkore

import "context"

// Host is the editor or workspace environment mkrun runs in. The host is
// authoritative for what file is active, which workspace it belongs to and
// how terminals are handled.
type Host interface {
	// ActiveFile returns the absolute path of the file currently being edited.
	// It returns false if there is no such file.
	ActiveFile() (string, bool)

	// WorkspaceRoot returns the root directory of the workspace that contains
	// file. It returns false if file is not in any known workspace.
	WorkspaceRoot(file string) (string, bool)

	// CreateTerminal opens a new terminal session. Sessions are never reused.
	CreateTerminal(name string) (Terminal, error)

	ShowInfo(msg string)
	ShowWarning(msg string)
	ShowError(msg string)
}

// Terminal is a session that accepts lines of command text. Commands are sent
// without any feedback whether they succeeded.
type Terminal interface {
	Name() string
	// Show makes the terminal visible to the user.
	Show() error
	// SendText sends one line of text as if typed by the user followed by
	// a newline.
	SendText(text string) error
}

// Builder is the build orchestrator that knows how to build a target by its
// name. BuildTarget blocks until the build finished or failed. Build output is
// none of mkrun's business.
type Builder interface {
	BuildTarget(ctx context.Context, root, target string) error
}

// BuilderFunc adapts a function to the [Builder] interface.
type BuilderFunc func(ctx context.Context, root, target string) error

func (f BuilderFunc) BuildTarget(ctx context.Context, root, target string) error {
	return f(ctx, root, target)
}
