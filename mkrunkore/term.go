package mkrunkore

import "path/filepath"

// CdCommand returns the shell command that changes into the directory
// containing exePath. The directory is quoted on all platforms, so the
// platform does not matter. It is taken for symmetry with [ExecCommand].
func CdCommand(_ Platform, exePath string) string {
	return `cd "` + filepath.Dir(exePath) + `"`
}

// ExecCommand returns the shell command that runs target's executable from
// within its directory.
func ExecCommand(p Platform, target string) string {
	if p == Windows {
		return `.\` + target + p.ExeSuffix()
	}
	return "./" + target
}
