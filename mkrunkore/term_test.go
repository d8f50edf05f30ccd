package mkrunkore

import (
	"path/filepath"
	"testing"
)

func TestCdCommand(t *testing.T) {
	exe := filepath.Join(string(filepath.Separator)+"ws", "build", "list_876")
	want := `cd "` + filepath.Join(string(filepath.Separator)+"ws", "build") + `"`
	for _, p := range []Platform{POSIX, Windows} {
		if c := CdCommand(p, exe); c != want {
			t.Errorf("%s: want `%s`, got `%s`", p, want, c)
		}
	}
}

func TestCdCommand_spaces(t *testing.T) {
	exe := filepath.Join(string(filepath.Separator)+"my ws", "out", "build", "a_b")
	c := CdCommand(POSIX, exe)
	want := `cd "` + filepath.Join(string(filepath.Separator)+"my ws", "out", "build") + `"`
	if c != want {
		t.Errorf("want `%s`, got `%s`", want, c)
	}
}
