package mkrun

import (
	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

type (
	Env      = mkrunkore.Env
	Host     = mkrunkore.Host
	Terminal = mkrunkore.Terminal
	Builder  = mkrunkore.Builder
	Platform = mkrunkore.Platform
	Trace    = mkrunkore.Trace
)

const (
	POSIX   = mkrunkore.POSIX
	Windows = mkrunkore.Windows
)

func DefaultEnv() *Env { return mkrunkore.DefaultEnv() }

// NewLauncher creates a [Launcher] for the platform mkrun runs on. Callers
// may change Platform and Env before the first use.
func NewLauncher(host Host, b Builder, tr *Trace) *Launcher {
	return &Launcher{
		Host:     host,
		Builder:  b,
		Platform: mkrunkore.HostPlatform(),
		Trace:    tr,
	}
}
