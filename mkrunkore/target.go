package mkrunkore

import (
	"path/filepath"
	"strings"
)

// TargetName derives the build target of file from the base name of its
// parent directory D and the file's base name without extension F as D_F,
// e.g. "list/876.cc" yields "list_876". The result is not checked against any
// naming rules of the build tool. A file directly in the file system root
// has the empty directory name, e.g. "/876.cc" yields "_876".
func TargetName(file string) string {
	dir := filepath.Base(filepath.Dir(file))
	if dir == string(filepath.Separator) {
		dir = ""
	}
	base := filepath.Base(file)
	stem := base[:len(base)-len(filepath.Ext(base))]
	if stem == "" {
		stem = base // dot files like ".main" have no extension
	}
	return dir + "_" + stem
}

// FileContext is the file a command was invoked for and the root of the
// workspace it belongs to.
type FileContext struct {
	File string
	Root string
}

func (fc FileContext) Target() string { return TargetName(fc.File) }

// Contains reports whether File lies within Root. A file equal to Root is not
// contained.
func (fc FileContext) Contains() bool {
	rel, err := fc.Rel()
	if err != nil || rel == "." {
		return false
	}
	if filepath.IsAbs(rel) || rel == ".." {
		return false
	}
	return !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Rel returns File relative to Root.
func (fc FileContext) Rel() (string, error) {
	return filepath.Rel(fc.Root, fc.File)
}
