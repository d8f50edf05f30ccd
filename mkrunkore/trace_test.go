package mkrunkore

import "testing"

func TestTrace_WithTarget(t *testing.T) {
	root := NewTrace(nil)
	a := root.Invocation("")
	b := root.Invocation("")
	if a.ID() == b.ID() {
		t.Fatalf("invocations share id %d", a.ID())
	}
	at := a.WithTarget("list_876")
	if at.ID() != a.ID() {
		t.Errorf("id changed from %d to %d", a.ID(), at.ID())
	}
	if at.Target() != "list_876" || a.Target() != "" {
		t.Errorf("targets '%s', '%s'", at.Target(), a.Target())
	}
	if s := at.String(); s != "#1:list_876" {
		t.Errorf("trace string '%s'", s)
	}
}

func TestTrace_nil(t *testing.T) {
	var tr *Trace
	if tr.Invocation("x") != nil || tr.WithTarget("x") != nil {
		t.Error("nil trace creates traces")
	}
	if tr.ID() != 0 || tr.String() != "#0" {
		t.Errorf("nil trace is %d '%s'", tr.ID(), tr)
	}
	tr.Stage(StageBuild)(nil)
	tr.Info("silent")
}
