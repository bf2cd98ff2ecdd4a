package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rytmctl/rytm/config"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	if c.MIDI.Input != "Analog Rytm" || c.MIDI.Output != "Analog Rytm" {
		t.Errorf("default ports are %q and %q", c.MIDI.Input, c.MIDI.Output)
	}
	if c.OSC.Listen == "" || c.RPC == "" {
		t.Error("default addresses are empty")
	}
	if c.Debug {
		t.Error("debug is on by default")
	}
}

func TestReadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("device: 3\nmidi:\n  output: USB\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := config.Default()
	exists, err := config.ReadFile(path, &c)
	if !exists || err != nil {
		t.Fatalf("ReadFile returned %v, %v", exists, err)
	}
	if c.Device != 3 || c.MIDI.Output != "USB" {
		t.Errorf("overrides not applied: %+v", c)
	}
	if c.MIDI.Input != "Analog Rytm" {
		t.Errorf("unmentioned field changed to %q", c.MIDI.Input)
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()
	c := config.Default()
	if exists, _ := config.ReadFile(filepath.Join(dir, "missing.yml"), &c); exists {
		t.Error("missing file reported as existing")
	}
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("devise: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if exists, err := config.ReadFile(path, &c); !exists || err == nil {
		t.Errorf("unknown key returned %v, %v", exists, err)
	}
}

func TestPath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "h.txt")
	if got := config.Path(abs); got != abs {
		t.Errorf("absolute path changed to %q", got)
	}
	if got := config.Path(""); got != "" {
		t.Errorf("empty path changed to %q", got)
	}
}

func TestLoadRejectsDevice(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("AppData", home)
	dir, err := config.Dir()
	if err != nil {
		t.Skip(err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, config.Filename)
	if err := os.WriteFile(path, []byte("device: 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := config.Load()
	if c.YmlError == nil {
		t.Error("device 200 accepted")
	}
	if c.Device != config.Default().Device {
		t.Errorf("device is %d after a rejected file", c.Device)
	}
	if err := os.WriteFile(path, []byte("device: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if c := config.Load(); c.YmlError != nil || c.Device != 5 {
		t.Errorf("device 5 gave %d, %v", c.Device, c.YmlError)
	}
}
