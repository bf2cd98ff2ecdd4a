// Package oscserver exposes the object shell over OSC. A message to
// /rytm/<selector> is handled as that selector with the OSC arguments as
// atoms; get results go to a reply address as /rytm/result.
package oscserver

import (
	"log"
	"net"
	"strconv"

	"github.com/hypebeast/go-osc/osc"
	"github.com/pkg/errors"
	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/external"
)

const (
	Prefix        = "/rytm/"
	ResultAddress = "/rytm/result"
	ErrorAddress  = "/rytm/error"
)

var selectors = []string{
	external.SelectorGet,
	external.SelectorSet,
	external.SelectorQuery,
	external.SelectorSend,
	external.SelectorDebug,
}

// Handler is the receiving end of the server, typically an
// *external.Object.
type Handler interface {
	Anything(selector string, atoms []command.Atom) error
}

// Atoms converts OSC arguments to atoms.
func Atoms(args []interface{}) ([]command.Atom, error) {
	ret := make([]command.Atom, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case int32:
			ret = append(ret, command.Int(int(v)))
		case int64:
			ret = append(ret, command.Int(int(v)))
		case float32:
			ret = append(ret, command.Float(float64(v)))
		case float64:
			ret = append(ret, command.Float(v))
		case string:
			ret = append(ret, command.Symbol(v))
		case bool:
			ret = append(ret, command.Bool(v))
		default:
			return nil, errors.Errorf("argument %d: unsupported OSC type %T", i, arg)
		}
	}
	return ret, nil
}

// Arguments converts atoms to OSC arguments.
func Arguments(atoms []command.Atom) []interface{} {
	ret := make([]interface{}, len(atoms))
	for i, a := range atoms {
		switch a.Kind {
		case command.IntAtom:
			ret[i] = int32(a.Int)
		case command.FloatAtom:
			ret[i] = float32(a.Float)
		default:
			ret[i] = a.Symbol
		}
	}
	return ret
}

// Server routes OSC messages to a handler. Failures are logged and, when a
// reply outlet is set, reported to it as /rytm/error.
type Server struct {
	Dispatcher *osc.StandardDispatcher

	handler Handler
	reply   *Outlet
	logger  *log.Logger
}

func NewServer(h Handler, reply *Outlet, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{Dispatcher: osc.NewStandardDispatcher(), handler: h, reply: reply, logger: logger}
	for _, sel := range selectors {
		err := s.Dispatcher.AddMsgHandler(Prefix+sel, func(msg *osc.Message) {
			s.handle(sel, msg)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "registering %s", Prefix+sel)
		}
	}
	return s, nil
}

func (s *Server) handle(selector string, msg *osc.Message) {
	atoms, err := Atoms(msg.Arguments)
	if err == nil {
		err = s.handler.Anything(selector, atoms)
	}
	if err == nil {
		return
	}
	s.logger.Printf("%s: %v", msg.Address, err)
	if s.reply != nil {
		if err := s.reply.send(osc.NewMessage(ErrorAddress, selector, err.Error())); err != nil {
			s.logger.Printf("sending error reply: %v", err)
		}
	}
}

// ListenAndServe serves OSC over UDP on addr until the connection fails.
func (s *Server) ListenAndServe(addr string) error {
	server := &osc.Server{Addr: addr, Dispatcher: s.Dispatcher}
	return server.ListenAndServe()
}

// Serve serves OSC on an already open connection.
func (s *Server) Serve(conn net.PacketConn) error {
	server := &osc.Server{Dispatcher: s.Dispatcher}
	return server.Serve(conn)
}

// Outlet sends get results to an OSC reply address. It implements
// command.Outlet.
type Outlet struct {
	client *osc.Client
}

// NewOutlet returns an outlet sending to addr, in host:port form.
func NewOutlet(addr string) (*Outlet, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "reply address %q", addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, errors.Wrapf(err, "reply port %q", portStr)
	}
	return &Outlet{client: osc.NewClient(host, port)}, nil
}

func (o *Outlet) Send(atoms []command.Atom) error {
	return o.send(osc.NewMessage(ResultAddress, Arguments(atoms)...))
}

func (o *Outlet) send(msg *osc.Message) error {
	return o.client.Send(msg)
}
