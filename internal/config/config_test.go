package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg := New()
	assert.Equal(t, DefaultCMake, cfg.CMake)
	assert.Equal(t, DefaultBuildDir, cfg.BuildDir)
	assert.Equal(t, DefaultPlatform, cfg.Platform)
	assert.Equal(t, DefaultLog, cfg.Log)
	assert.False(t, cfg.Configure)
	assert.Nil(t, cfg.ShellArgs())
}

func TestParseDecode(t *testing.T) {
	settings := make(map[string]any)
	require.NoError(t, Parse(strings.NewReader(`
cmake: /opt/cmake/bin/cmake
build_dir: out/build
build_type: Debug
configure: true
parallel: 8
shell: bash --norc
workspaces:
  - /ws
  - /src/algo
`), settings))
	cfg := New()
	require.NoError(t, Decode(settings, cfg))
	assert.Equal(t, "/opt/cmake/bin/cmake", cfg.CMake)
	assert.Equal(t, "out/build", cfg.BuildDir)
	assert.Equal(t, "Debug", cfg.BuildType)
	assert.True(t, cfg.Configure)
	assert.Equal(t, 8, cfg.Parallel)
	assert.Equal(t, []string{"bash", "--norc"}, cfg.ShellArgs())
	assert.Equal(t, []string{"/ws", "/src/algo"}, cfg.Workspaces)
	assert.Equal(t, DefaultLog, cfg.Log, "default kept")
}

func TestParse_empty(t *testing.T) {
	settings := make(map[string]any)
	require.NoError(t, Parse(strings.NewReader(""), settings))
	assert.Empty(t, settings)
}

func TestDecode_unknownKey(t *testing.T) {
	err := Decode(map[string]any{"bulid_dir": "x"}, New())
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	settings := map[string]any{"parallel": 2, "log": "info"}
	fromEnv([]string{
		"MKRUN_PARALLEL=6",
		"MKRUN_CONFIGURE=true",
		"MKRUN_WORKSPACES=/a" + string(os.PathListSeparator) + " /b ",
		"MKRUN_UNRELATED=1",
		"PARALLEL=99",
	}, settings)
	cfg := New()
	require.NoError(t, Decode(settings, cfg))
	assert.Equal(t, 6, cfg.Parallel)
	assert.True(t, cfg.Configure)
	assert.Equal(t, "info", cfg.Log)
	assert.Equal(t, []string{"/a", "/b"}, cfg.Workspaces)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mkrun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("build_type: Release\nlog: info\n"), 0666))
	t.Setenv("MKRUN_LOG", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Release", cfg.BuildType)
	assert.Equal(t, "debug", cfg.Log, "environment overrides file")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
