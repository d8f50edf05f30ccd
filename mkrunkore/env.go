package mkrunkore

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
)

// Env is what processes started by mkrun get to see: standard I/O and the
// environment variables, here called vars. Log receives diagnostics.
type Env struct {
	In       io.Reader
	Out, Err io.Writer
	Log      *slog.Logger

	vars   map[string]string
	unset  map[string]bool
	parent *Env
	xenv   []string
}

// DefaultEnv uses the standard I/O, the OS environment and [slog.Default].
func DefaultEnv() *Env {
	env := &Env{
		In:   os.Stdin,
		Out:  os.Stdout,
		Err:  os.Stderr,
		Log:  slog.Default(),
		vars: make(map[string]string),
	}
	env.SetVars(os.Environ()...)
	return env
}

// Sub creates an Env that inherits everything from e. Changes to the sub
// environment do not affect e.
func (e *Env) Sub() *Env {
	return &Env{
		In: e.In, Out: e.Out, Err: e.Err,
		Log:    e.Log,
		parent: e,
	}
}

func (e *Env) Var(key string) (string, bool) {
	for e != nil {
		if v, ok := e.vars[key]; ok {
			return v, true
		}
		if e.unset[key] {
			break
		}
		e = e.parent
	}
	return "", false
}

func (e *Env) SetVar(key, val string) {
	if e.vars == nil {
		e.vars = make(map[string]string)
	}
	e.vars[key] = val
	delete(e.unset, key)
	e.xenv = nil
}

// SetVars sets variables given as "key=value". A missing '=' sets key to the
// empty string. Entries with an empty key are ignored.
func (e *Env) SetVars(kvs ...string) {
	for _, kv := range kvs {
		k, v, _ := strings.Cut(kv, "=")
		if k == "" {
			continue
		}
		e.SetVar(k, v)
	}
}

func (e *Env) UnsetVar(key string) {
	delete(e.vars, key)
	if e.parent != nil {
		if e.unset == nil {
			e.unset = make(map[string]bool)
		}
		e.unset[key] = true
	}
	e.xenv = nil
}

// IllegalVarKeys lists variable keys that cannot be passed to a process.
type IllegalVarKeys []string

func (e IllegalVarKeys) Error() string {
	return fmt.Sprintf("illegal exec env keys: %s", strings.Join(e, ", "))
}

func (IllegalVarKeys) Is(target error) bool {
	_, ok := target.(IllegalVarKeys)
	return ok
}

// ExecEnv returns the variables in the form expected by [os/exec.Cmd.Env],
// sorted by key. Keys containing '=' are left out and reported as
// [IllegalVarKeys] along with the usable result. If no Env in the chain has
// any variables, e.g. an Env literal, ExecEnv returns nil so that processes
// inherit the environment of mkrun.
func (e *Env) ExecEnv() ([]string, error) {
	if e.xenv != nil {
		return e.xenv, nil
	}
	if e.blank() {
		return nil, nil
	}
	var bad IllegalVarKeys
	vars := e.merged()
	keys := slices.Sorted(maps.Keys(vars))
	xenv := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.ContainsRune(k, '=') {
			bad = append(bad, k)
			continue
		}
		xenv = append(xenv, k+"="+vars[k])
	}
	if len(bad) > 0 {
		return xenv, bad
	}
	e.xenv = xenv
	return xenv, nil
}

func (e *Env) blank() bool {
	for ; e != nil; e = e.parent {
		if len(e.vars) > 0 || len(e.unset) > 0 {
			return false
		}
	}
	return true
}

func (e *Env) merged() map[string]string {
	if e.parent == nil {
		return maps.Clone(e.vars)
	}
	res := e.parent.merged()
	if res == nil {
		res = make(map[string]string)
	}
	for k := range e.unset {
		delete(res, k)
	}
	maps.Copy(res, e.vars)
	return res
}

// Logger returns e.Log or [slog.Default] if e.Log is nil.
func (e *Env) Logger() *slog.Logger {
	if e == nil || e.Log == nil {
		return slog.Default()
	}
	return e.Log
}
