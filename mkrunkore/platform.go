package mkrunkore

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform selects the operating system conventions for executable names and
// terminal commands. It is resolved once at the entry boundary and passed on
// explicitly.
type Platform int

const (
	POSIX Platform = iota
	Windows
)

// HostPlatform returns the Platform of the running process.
func HostPlatform() Platform {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return POSIX
}

// ParsePlatform accepts "auto", "" (both meaning [HostPlatform]), "posix" and
// "windows" ignoring case.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return HostPlatform(), nil
	case "posix", "unix", "linux", "darwin":
		return POSIX, nil
	case "windows", "win", "win32":
		return Windows, nil
	}
	return POSIX, fmt.Errorf("illegal platform '%s'", s)
}

func (p Platform) String() string {
	switch p {
	case POSIX:
		return "posix"
	case Windows:
		return "windows"
	}
	return fmt.Sprintf("platform-%d", int(p))
}

// ExeSuffix is appended to a target name to get the executable's file name.
func (p Platform) ExeSuffix() string {
	if p == Windows {
		return ".exe"
	}
	return ""
}
