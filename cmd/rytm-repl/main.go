// Command rytm-repl is an interactive console for the rytm message
// protocol. Lines are messages as a patch would send them, e.g.
//
//	set pattern 3 5 10 note 64
//	get kit_wb sound 2 name
//
// and lines starting with ':' are console commands.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/rytmctl/rytm/cmd"
	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/config"
	"github.com/rytmctl/rytm/device"
	"github.com/rytmctl/rytm/external"
	"github.com/rytmctl/rytm/version"
)

const help = `messages:
  get|set <class> [<index>] <path...> <identifier> [<slot>] [<value>]
  query|send <class> [<index>]
  debug 0|1
console commands:
  :save <file>   write the project as yaml
  :load <file>   replace the project from a yaml file
  :ports         list MIDI ports
  :quit          exit`

func main() {
	conf := config.Load()
	if conf.YmlError != nil {
		log.Printf("ignoring config file: %v", conf.YmlError)
	}
	deviceID := cmd.DeviceID(conf.Device)
	flag.Var(&deviceID, "device", "SysEx device `id`, 0 to 127")
	midiIn := flag.String("midi-input", conf.MIDI.Input, "open the first MIDI input whose name starts with `prefix`")
	midiOut := flag.String("midi-output", conf.MIDI.Output, "open the first MIDI output whose name starts with `prefix`")
	debug := flag.Bool("debug", conf.Debug, "trace message dispatch")
	history := flag.String("history", config.Path(conf.History), "history `file`")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}

	midi := cmd.NewMIDIContext()
	defer midi.Close()
	openPorts(midi, *midiIn, *midiOut)

	obj := external.New(midi, printer{w: os.Stdout}, log.New(os.Stderr, "", 0))
	obj.Device = byte(deviceID)
	if *debug {
		if err := obj.Anything(external.SelectorDebug, []command.Atom{command.Int(1)}); err != nil {
			log.Printf("enabling debug: %v", err)
		}
	}
	go func() {
		for msg := range midi.Messages() {
			if err := obj.SysEx(msg); err != nil {
				log.Printf("incoming SysEx: %v", err)
			}
		}
	}()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetWordCompleter(complete)
	readHistory(line, *history)
	defer writeHistory(line, *history)

	fmt.Println(dimStyle.Render("rytm " + version.String() + ", MIDI " + midi.Support().String() + "; :help for help"))
	for {
		input, err := line.Prompt("rytm> ")
		if err == liner.ErrPromptAborted || err == io.EOF {
			return
		}
		if err != nil {
			log.Printf("reading input: %v", err)
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if quit := run(obj, midi, input, os.Stdout); quit {
			return
		}
	}
}

// run executes one input line and reports whether the console should exit.
func run(obj *external.Object, midi device.Context, input string, w io.Writer) bool {
	if !strings.HasPrefix(input, ":") {
		if err := obj.Message(command.ParseAtoms(input)); err != nil {
			printError(w, err)
		}
		return false
	}
	fields := strings.Fields(input)
	var err error
	switch fields[0] {
	case ":quit":
		return true
	case ":help":
		fmt.Fprintln(w, help)
	case ":ports":
		listPorts(w, midi)
	case ":save", ":load":
		if len(fields) != 2 {
			err = fmt.Errorf("%s takes a file name", fields[0])
		} else if fields[0] == ":save" {
			err = save(obj, fields[1])
		} else {
			err = load(obj, fields[1])
		}
	default:
		err = fmt.Errorf("unknown console command %s", fields[0])
	}
	if err != nil {
		printError(w, err)
	}
	return false
}

func openPorts(midi device.Context, in, out string) {
	if _, err := device.OpenByPrefix(midi.Inputs, in); err != nil {
		log.Printf("MIDI input: %v", err)
	}
	if _, err := device.OpenByPrefix(midi.Outputs, out); err != nil {
		log.Printf("MIDI output: %v", err)
	}
}

func listPorts(w io.Writer, midi device.Context) {
	list := func(what string, ports func(yield func(device.Port) bool)) {
		ports(func(p device.Port) bool {
			state := ""
			if p.IsOpen() {
				state = " (open)"
			}
			fmt.Fprintf(w, "%s %s%s\n", what, p, state)
			return true
		})
	}
	list("in ", midi.Inputs)
	list("out", midi.Outputs)
}

func readHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.ReadHistory(f)
}

func writeHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("writing history: %v", err)
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Printf("writing history: %v", err)
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
