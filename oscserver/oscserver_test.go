package oscserver_test

import (
	"testing"

	"github.com/hypebeast/go-osc/osc"
	"github.com/pkg/errors"
	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/oscserver"
)

func TestAtoms(t *testing.T) {
	atoms, err := oscserver.Atoms([]interface{}{"pattern", int32(3), int64(5), float32(0.5), 1.25, true})
	if err != nil {
		t.Fatal(err)
	}
	if got := command.FormatAtoms(atoms); got != "pattern 3 5 0.5 1.25 1" {
		t.Fatalf("atoms are %q", got)
	}
	if _, err := oscserver.Atoms([]interface{}{[]byte{1}}); err == nil {
		t.Fatal("a blob was accepted")
	}
}

func TestArguments(t *testing.T) {
	args := oscserver.Arguments([]command.Atom{command.Symbol("note"), command.Int(3), command.Float(0.5)})
	if args[0] != "note" || args[1] != int32(3) || args[2] != float32(0.5) {
		t.Fatalf("arguments are %#v", args)
	}
}

type recorder struct {
	selector string
	atoms    []command.Atom
}

func (r *recorder) Anything(selector string, atoms []command.Atom) error {
	r.selector, r.atoms = selector, atoms
	if selector == "debug" {
		return errors.New("nope")
	}
	return nil
}

func TestDispatch(t *testing.T) {
	r := &recorder{}
	s, err := oscserver.NewServer(r, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Dispatcher.Dispatch(osc.NewMessage("/rytm/set", "kit", int32(2), "fxlfodestination:filter"))
	if r.selector != "set" || command.FormatAtoms(r.atoms) != "kit 2 fxlfodestination:filter" {
		t.Fatalf("handler got %s %v", r.selector, r.atoms)
	}
	s.Dispatcher.Dispatch(osc.NewMessage("/rytm/debug", int32(1)))
	if r.selector != "debug" {
		t.Fatalf("handler got %s", r.selector)
	}
}

func TestNewOutlet(t *testing.T) {
	if _, err := oscserver.NewOutlet("127.0.0.1:9001"); err != nil {
		t.Fatal(err)
	}
	for _, addr := range []string{"localhost", "localhost:port"} {
		if _, err := oscserver.NewOutlet(addr); err == nil {
			t.Errorf("%q was accepted", addr)
		}
	}
}
