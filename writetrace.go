package mkrun

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"git.fractalqb.de/fractalqb/sllm/v3"

	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

// WriteTracer writes progress as one line per event to W. Which events are
// written is selected by Log.
type WriteTracer struct {
	W   io.Writer
	Log mkrunkore.TraceLog

	mu sync.Mutex
}

var _ mkrunkore.Tracer = (*WriteTracer)(nil)

func DefaultTracer() *WriteTracer {
	return &WriteTracer{W: os.Stderr, Log: mkrunkore.TraceWarn}
}

// ParseLogFlag sets Log from one of "off", "warn", "info" and "debug" or
// their first letter. An empty flag keeps Log.
func (tr *WriteTracer) ParseLogFlag(f string) error {
	switch f {
	case "":
		return nil
	case "off":
		tr.Log = 0
	case "warn", "w":
		tr.Log = mkrunkore.TraceWarn
	case "info", "i":
		tr.Log = mkrunkore.TraceWarn | mkrunkore.TraceInfo
	case "debug", "d":
		tr.Log = mkrunkore.TraceWarn | mkrunkore.TraceInfo | mkrunkore.TraceDebug
	default:
		return fmt.Errorf("write tracer: illegal log flag '%s'", f)
	}
	return nil
}

// SlogLevel returns the slog level that matches Log.
func (tr *WriteTracer) SlogLevel() slog.Level {
	switch {
	case tr.Log&mkrunkore.TraceDebug != 0:
		return slog.LevelDebug
	case tr.Log&mkrunkore.TraceInfo != 0:
		return slog.LevelInfo
	case tr.Log&mkrunkore.TraceWarn != 0:
		return slog.LevelWarn
	}
	return slog.LevelError
}

func (tr *WriteTracer) Debug(t *Trace, msg string, args ...any) {
	if tr.Log&mkrunkore.TraceDebug == 0 {
		return
	}
	tr.message(t, "DEBUG", msg, args)
}

func (tr *WriteTracer) Info(t *Trace, msg string, args ...any) {
	if tr.Log&(mkrunkore.TraceInfo|mkrunkore.TraceDebug) == 0 {
		return
	}
	tr.message(t, "INFO ", msg, args)
}

func (tr *WriteTracer) Warn(t *Trace, msg string, args ...any) {
	if tr.Log == 0 {
		return
	}
	tr.message(t, "WARN ", msg, args)
}

func (tr *WriteTracer) StartStage(t *Trace, s mkrunkore.Stage) {
	if tr.Log&(mkrunkore.TraceInfo|mkrunkore.TraceDebug) == 0 {
		return
	}
	tr.mu.Lock()
	defer tr.mu.Unlock()
	fmt.Fprintf(tr.W, "%s\t{ %s\n", t, s)
}

func (tr *WriteTracer) DoneStage(t *Trace, s mkrunkore.Stage, dt time.Duration, err error) {
	if err != nil {
		if tr.Log == 0 {
			return
		}
		tr.mu.Lock()
		defer tr.mu.Unlock()
		fmt.Fprintf(tr.W, "%s\t} %s failed after %s: %s\n", t, s, dt, err)
		return
	}
	if tr.Log&(mkrunkore.TraceInfo|mkrunkore.TraceDebug) == 0 {
		return
	}
	tr.mu.Lock()
	defer tr.mu.Unlock()
	fmt.Fprintf(tr.W, "%s\t} %s took %s\n", t, s, dt)
}

func (tr *WriteTracer) message(t *Trace, level, msg string, args []any) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	fmt.Fprintf(tr.W, "%s\t  %s ", t, level)
	sllm.Fprint(tr.W, msg, sllmArgs(args).append)
	fmt.Fprintln(tr.W)
}

type sllmArgs []any

func (as sllmArgs) append(buf []byte, _ int, n string) ([]byte, error) {
	for len(as) > 0 {
		switch k := as[0].(type) {
		case string:
			if len(as) == 1 {
				return buf, fmt.Errorf("no value for key '%s'", k)
			}
			if k == n {
				return sllm.AppendArg(buf, as[1]), nil
			}
			as = as[2:]
		case slog.Attr:
			if k.Key == n {
				return sllm.AppendArg(buf, k.Value.Any()), nil
			}
			as = as[1:]
		default:
			return buf, fmt.Errorf("illegal key type %T", k)
		}
	}
	return buf, fmt.Errorf("no argument '%s'", n)
}
