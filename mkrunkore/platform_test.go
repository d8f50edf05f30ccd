package mkrunkore

import (
	"runtime"
	"testing"

	"git.fractalqb.de/fractalqb/testerr"
)

func TestParsePlatform(t *testing.T) {
	p := testerr.Shall1(ParsePlatform("Windows")).BeNil(t)
	if p != Windows {
		t.Errorf("parsed %s", p)
	}
	p = testerr.Shall1(ParsePlatform("posix")).BeNil(t)
	if p != POSIX {
		t.Errorf("parsed %s", p)
	}
	p = testerr.Shall1(ParsePlatform("auto")).BeNil(t)
	if (runtime.GOOS == "windows") != (p == Windows) {
		t.Errorf("auto platform %s on %s", p, runtime.GOOS)
	}
	testerr.Shall1(ParsePlatform("amiga")).Check(t, testerr.Msg("illegal platform 'amiga'"))
}

func TestPlatform_commands(t *testing.T) {
	if s := POSIX.ExeSuffix(); s != "" {
		t.Errorf("posix exe suffix '%s'", s)
	}
	if s := Windows.ExeSuffix(); s != ".exe" {
		t.Errorf("windows exe suffix '%s'", s)
	}
	if c := ExecCommand(POSIX, "list_876"); c != "./list_876" {
		t.Errorf("posix exec command: %s", c)
	}
	if c := ExecCommand(Windows, "list_876"); c != `.\list_876.exe` {
		t.Errorf("windows exec command: %s", c)
	}
}
