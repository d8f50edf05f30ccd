package mkrunkore

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stage is one step of the build-and-run pipeline.
type Stage int

const (
	StageResolve Stage = iota
	StageBuild
	StageLocate
	StageLaunch
)

func (s Stage) String() string {
	switch s {
	case StageResolve:
		return "resolve"
	case StageBuild:
		return "build"
	case StageLocate:
		return "locate"
	case StageLaunch:
		return "launch"
	}
	return fmt.Sprintf("stage-%d", int(s))
}

// Tracer receives progress events. Messages use backtick templates where
// `name` refers to the argument with key name.
type Tracer interface {
	Debug(t *Trace, msg string, args ...any)
	Info(t *Trace, msg string, args ...any)
	Warn(t *Trace, msg string, args ...any)

	StartStage(t *Trace, s Stage)
	DoneStage(t *Trace, s Stage, dt time.Duration, err error)
}

type TraceLog int

const (
	TraceWarn TraceLog = (1 << iota)
	TraceInfo
	TraceDebug
)

// Trace identifies one invocation of the pipeline in its Tracer events. A nil
// *Trace and a Trace without Tracer are silent.
type Trace struct {
	root   *traceRoot
	id     uint64
	target string
}

func NewTrace(t Tracer) *Trace {
	return &Trace{root: &traceRoot{tr: t}}
}

// Invocation returns a new Trace for target with its own invocation id.
func (t *Trace) Invocation(target string) *Trace {
	if t == nil {
		return nil
	}
	return &Trace{
		root:   t.root,
		id:     t.root.idSeq.Add(1),
		target: target,
	}
}

// WithTarget returns a Trace for the same invocation that is labeled with
// target.
func (t *Trace) WithTarget(target string) *Trace {
	if t == nil {
		return nil
	}
	return &Trace{root: t.root, id: t.id, target: target}
}

func (t *Trace) ID() uint64 {
	if t == nil {
		return 0
	}
	return t.id
}

func (t *Trace) Target() string {
	if t == nil {
		return ""
	}
	return t.target
}

func (t *Trace) String() string {
	if t == nil {
		return "#0"
	}
	if t.target == "" {
		return fmt.Sprintf("#%d", t.id)
	}
	return fmt.Sprintf("#%d:%s", t.id, t.target)
}

func (t *Trace) Debug(msg string, args ...any) {
	if tr := t.tracer(); tr != nil {
		tr.Debug(t, msg, args...)
	}
}

func (t *Trace) Info(msg string, args ...any) {
	if tr := t.tracer(); tr != nil {
		tr.Info(t, msg, args...)
	}
}

func (t *Trace) Warn(msg string, args ...any) {
	if tr := t.tracer(); tr != nil {
		tr.Warn(t, msg, args...)
	}
}

// Stage reports the start of s and returns the function that reports its end.
func (t *Trace) Stage(s Stage) (done func(error)) {
	tr := t.tracer()
	if tr == nil {
		return func(error) {}
	}
	tr.StartStage(t, s)
	start := time.Now()
	return func(err error) {
		tr.DoneStage(t, s, time.Since(start), err)
	}
}

func (t *Trace) tracer() Tracer {
	if t == nil || t.root == nil {
		return nil
	}
	return t.root.tr
}

type traceRoot struct {
	tr    Tracer
	idSeq atomic.Uint64
}
