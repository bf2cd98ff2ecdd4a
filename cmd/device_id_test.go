package cmd_test

import (
	"flag"
	"io"
	"testing"

	"github.com/rytmctl/rytm/cmd"
)

func TestDeviceID(t *testing.T) {
	for _, c := range []struct {
		arg  string
		want cmd.DeviceID
		ok   bool
	}{
		{"0", 0, true},
		{"127", 127, true},
		{"0x10", 16, true},
		{"128", 0, false},
		{"256", 0, false},
		{"-1", 0, false},
		{"rytm", 0, false},
	} {
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		var id cmd.DeviceID
		fs.Var(&id, "device", "")
		err := fs.Parse([]string{"-device", c.arg})
		if (err == nil) != c.ok {
			t.Errorf("-device %s: error %v", c.arg, err)
			continue
		}
		if c.ok && id != c.want {
			t.Errorf("-device %s gave %d, want %d", c.arg, id, c.want)
		}
	}
}
