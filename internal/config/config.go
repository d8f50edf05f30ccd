// Package config loads the mkrun settings from a YAML file, a .env file and
// the process environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Config holds all mkrun settings.
type Config struct {
	// CMake is the cmake executable.
	CMake string `yaml:"cmake" mapstructure:"cmake"`
	// BuildDir is the cmake binary directory used for building. The
	// executable is still searched in all well-known build directories.
	BuildDir  string `yaml:"build_dir" mapstructure:"build_dir"`
	BuildType string `yaml:"build_type" mapstructure:"build_type"`
	Generator string `yaml:"generator" mapstructure:"generator"`
	Configure bool   `yaml:"configure" mapstructure:"configure"`
	Parallel  int    `yaml:"parallel" mapstructure:"parallel"`

	// Shell is the command line of the terminal shell, split at white space.
	Shell       string   `yaml:"shell" mapstructure:"shell"`
	Interactive bool     `yaml:"interactive" mapstructure:"interactive"`
	Platform    string   `yaml:"platform" mapstructure:"platform"`
	Log         string   `yaml:"log" mapstructure:"log"`
	Workspaces  []string `yaml:"workspaces" mapstructure:"workspaces"`
}

// Default values
const (
	DefaultFile     = ".mkrun.yaml"
	DefaultCMake    = "cmake"
	DefaultBuildDir = "build"
	DefaultPlatform = "auto"
	DefaultLog      = "warn"

	// EnvPrefix is the prefix of environment variables that override the
	// config file, e.g. MKRUN_BUILD_TYPE overrides build_type.
	EnvPrefix = "MKRUN_"
)

// New returns a Config with default values.
func New() *Config {
	return &Config{
		CMake:    DefaultCMake,
		BuildDir: DefaultBuildDir,
		Platform: DefaultPlatform,
		Log:      DefaultLog,
	}
}

// Load reads the config file at path over the defaults and then applies
// the environment. A .env file in the working directory is loaded into the
// environment first, without overriding variables that are already set.
// If path is empty, DefaultFile is used if it exists.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	settings := make(map[string]any)
	switch {
	case path != "":
		if err := readFile(path, settings); err != nil {
			return nil, err
		}
	default:
		err := readFile(DefaultFile, settings)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	fromEnv(os.Environ(), settings)

	cfg := New()
	if err := Decode(settings, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string, into map[string]any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := Parse(bytes.NewReader(data), into); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Parse reads YAML settings from r into settings. An empty document is no
// error.
func Parse(r io.Reader, settings map[string]any) error {
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

var envKeys = map[string]bool{
	"cmake":       true,
	"build_dir":   true,
	"build_type":  true,
	"generator":   true,
	"configure":   true,
	"parallel":    true,
	"shell":       true,
	"interactive": true,
	"platform":    true,
	"log":         true,
	"workspaces":  true,
}

// fromEnv sets settings from MKRUN_* variables. Workspaces are separated by
// the OS path list separator. Variables that match no setting are ignored.
func fromEnv(environ []string, settings map[string]any) {
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
		if !envKeys[key] {
			continue
		}
		if key == "workspaces" {
			settings[key] = splitList(v)
			continue
		}
		settings[key] = v
	}
}

func splitList(s string) []string {
	var res []string
	for _, e := range strings.Split(s, string(os.PathListSeparator)) {
		if e = strings.TrimSpace(e); e != "" {
			res = append(res, e)
		}
	}
	return res
}

// Decode sets cfg from settings. Strings are converted to the field types
// where needed. Unknown keys are an error.
func Decode(settings map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(settings); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ShellArgs returns Shell split into the command line of the shell. Nil
// means the platform default.
func (c *Config) ShellArgs() []string {
	return strings.Fields(c.Shell)
}
