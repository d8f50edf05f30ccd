package mkrun

import (
	"testing"
	"time"

	"git.fractalqb.de/fractalqb/mkrun/mkrunkore"
)

type TestTracer struct{ t *testing.T }

var _ mkrunkore.Tracer = TestTracer{}

func (tr TestTracer) Debug(t *Trace, msg string, args ...any) {
	tr.t.Logf("mkrun-DEBUG %s: %s %v", t, msg, args)
}

func (tr TestTracer) Info(t *Trace, msg string, args ...any) {
	tr.t.Logf("mkrun-INFO %s: %s %v", t, msg, args)
}

func (tr TestTracer) Warn(t *Trace, msg string, args ...any) {
	tr.t.Logf("mkrun-WARN %s: %s %v", t, msg, args)
}

func (tr TestTracer) StartStage(t *Trace, s mkrunkore.Stage) {
	tr.t.Logf("mkrun-StartStage %s: %s", t, s)
}

func (tr TestTracer) DoneStage(t *Trace, s mkrunkore.Stage, dt time.Duration, err error) {
	tr.t.Logf("mkrun-DoneStage %s: %s %s %v", t, s, dt, err)
}
