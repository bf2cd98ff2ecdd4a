// Command rytm-serve bridges an Analog Rytm on MIDI to OSC and net/rpc
// clients. Every client talks to one shared project.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/rytmctl/rytm/cmd"
	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/config"
	"github.com/rytmctl/rytm/device"
	"github.com/rytmctl/rytm/external"
	"github.com/rytmctl/rytm/oscserver"
	"github.com/rytmctl/rytm/rpc"
	"github.com/rytmctl/rytm/version"
)

func main() {
	conf := config.Load()
	if conf.YmlError != nil {
		log.Printf("ignoring config file: %v", conf.YmlError)
	}
	deviceID := cmd.DeviceID(conf.Device)
	flag.Var(&deviceID, "device", "SysEx device `id`, 0 to 127")
	midiIn := flag.String("midi-input", conf.MIDI.Input, "open the first MIDI input whose name starts with `prefix`")
	midiOut := flag.String("midi-output", conf.MIDI.Output, "open the first MIDI output whose name starts with `prefix`")
	oscListen := flag.String("osc", conf.OSC.Listen, "listen for OSC on `host:port`; empty disables OSC")
	oscReply := flag.String("osc-reply", conf.OSC.Reply, "send OSC results to `host:port`")
	rpcAddr := flag.String("rpc", conf.RPC, "serve net/rpc on `host:port`; empty disables RPC")
	debug := flag.Bool("debug", conf.Debug, "trace message dispatch")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String())
		os.Exit(0)
	}

	midi := cmd.NewMIDIContext()
	defer midi.Close()
	if midi.Support() != device.Supported {
		log.Printf("MIDI %s; query and send will fail", midi.Support())
	}
	if _, err := device.OpenByPrefix(midi.Inputs, *midiIn); err != nil {
		log.Printf("MIDI input: %v", err)
	}
	if _, err := device.OpenByPrefix(midi.Outputs, *midiOut); err != nil {
		log.Printf("MIDI output: %v", err)
	}

	var reply *oscserver.Outlet
	if *oscReply != "" {
		var err error
		if reply, err = oscserver.NewOutlet(*oscReply); err != nil {
			log.Fatal(err)
		}
	}
	var queryOut command.Outlet
	if reply != nil {
		queryOut = reply
	}
	obj := external.New(midi, queryOut, log.Default())
	obj.Device = byte(deviceID)
	if *debug {
		if err := obj.Anything(external.SelectorDebug, []command.Atom{command.Int(1)}); err != nil {
			log.Fatal(err)
		}
	}
	go pump(obj, midi.Messages())

	if *rpcAddr != "" {
		addr, err := rpc.Receiver(*rpcAddr, obj)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("serving net/rpc on %s", addr)
	}
	if *oscListen != "" {
		server, err := oscserver.NewServer(obj, reply, log.Default())
		if err != nil {
			log.Fatal(err)
		}
		go func() {
			log.Printf("serving OSC on %s", *oscListen)
			if err := server.ListenAndServe(*oscListen); err != nil {
				log.Fatal(err)
			}
		}()
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
}

// pump applies incoming dumps until the channel closes.
func pump(obj *external.Object, messages <-chan []byte) {
	for msg := range messages {
		if err := obj.SysEx(msg); err != nil {
			log.Printf("incoming SysEx: %v", err)
		}
	}
}
