// Package config holds the settings of the command line tools: built-in
// defaults, overridden by <UserConfigDir>/rytm/config.yml when it exists.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type (
	Config struct {
		Device  byte
		MIDI    MIDIConfig `yaml:"midi"`
		OSC     OSCConfig  `yaml:"osc"`
		RPC     string     `yaml:"rpc"`
		Debug   bool
		History string

		// YmlError is set when the user file exists but could not be read.
		YmlError error `yaml:"-"`
	}

	// MIDIConfig names the ports by prefix; the first port whose name starts
	// with the prefix is opened.
	MIDIConfig struct {
		Input  string
		Output string
	}

	OSCConfig struct {
		Listen string
		Reply  string `yaml:",omitempty"`
	}
)

const (
	Filename = "config.yml"

	// MaxDevice is the highest SysEx device id.
	MaxDevice = 0x7F
)

//go:embed default.yml
var defaultConfigYaml []byte

func Default() Config {
	var c Config
	if err := yaml.UnmarshalStrict(defaultConfigYaml, &c); err != nil {
		panic(fmt.Errorf("failed to unmarshal default config: %w", err))
	}
	return c
}

// Dir returns the directory of the user's configuration files.
func Dir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "rytm"), nil
}

// ReadFile reads a yml file over target, which must be a pointer. Fields
// the file does not mention keep their values.
func ReadFile(path string, target interface{}) (exists bool, err error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, yaml.UnmarshalStrict(bytes, target)
}

// Load returns the defaults overridden by the user's config file.
func Load() Config {
	c := Default()
	dir, err := Dir()
	if err != nil {
		return c
	}
	user := c
	exists, err := ReadFile(filepath.Join(dir, Filename), &user)
	if !exists {
		return c
	}
	if err == nil {
		err = user.check()
	}
	if err != nil {
		c.YmlError = err
		return c
	}
	return user
}

func (c Config) check() error {
	if c.Device > MaxDevice {
		return fmt.Errorf("device id %d is out of range [0, %d]", c.Device, MaxDevice)
	}
	return nil
}

// Path resolves a file name relative to the config directory. Absolute
// names are returned as is.
func Path(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	dir, err := Dir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, name)
}
