// Package mkfs finds the executables of build targets in the file system.
package mkfs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bits-and-blooms/bitset"

	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

// CandidateDirs are the build output directories, relative to the workspace
// root, that are searched for executables. The order is the search priority.
var CandidateDirs = [...]string{
	"build",
	filepath.Join("out", "build"),
	"cmake-build-debug",
	"cmake-build-release",
}

// ExeName returns the file name of target's executable on platform p.
func ExeName(target string, p mkrunkore.Platform) string {
	return target + p.ExeSuffix()
}

// ExePath returns the path where target's executable would be located in the
// candidate directory with index cand.
func ExePath(root string, cand int, target string, p mkrunkore.Platform) string {
	return filepath.Join(root, CandidateDirs[cand], ExeName(target, p))
}

// Locate returns the path of target's executable in the first candidate
// directory of the workspace root that has one. Later candidates are not
// checked once an executable was found. If no candidate has an executable,
// Locate returns an [*ExeNotFound] error.
func Locate(root, target string, p mkrunkore.Platform) (string, error) {
	tried := make([]string, 0, len(CandidateDirs))
	for i := range CandidateDirs {
		path := ExePath(root, i, target, p)
		if IsFile(path) {
			return path, nil
		}
		tried = append(tried, path)
	}
	return "", &ExeNotFound{Target: target, Root: root, Tried: tried}
}

// Survey checks all candidate directories for target's executable. Bit i of
// the result is set iff [CandidateDirs][i] has one.
func Survey(root, target string, p mkrunkore.Platform) *bitset.BitSet {
	hits := bitset.New(uint(len(CandidateDirs)))
	for i := range CandidateDirs {
		hits.SetTo(uint(i), IsFile(ExePath(root, i, target, p)))
	}
	return hits
}

// IsFile reports whether path can be stat'ed and is not a directory. Any
// error from stat, not only [io/fs.ErrNotExist], counts as "no file".
func IsFile(path string) bool {
	st, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !st.IsDir()
}

type ExeNotFound struct {
	Target string
	Root   string
	Tried  []string
}

func (e *ExeNotFound) Error() string {
	return fmt.Sprintf("could not find executable for target: %s", e.Target)
}

func (*ExeNotFound) Is(target error) bool {
	_, ok := target.(*ExeNotFound)
	return ok
}
