// Package rpc serves the object shell over net/rpc on HTTP, so scripts and
// other processes can drive a running bridge.
package rpc

import (
	"net"
	"net/http"
	"net/rpc"

	"github.com/pkg/errors"
	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/external"
)

type (
	// Handler is the receiving end of the service, typically an
	// *external.Object.
	Handler interface {
		Anything(selector string, atoms []command.Atom) error
		GetTo(atoms []command.Atom, out command.Outlet) error
	}

	Args struct {
		Selector string
		Atoms    []command.Atom
	}

	// Reply holds the results of a get; it is empty for other selectors.
	Reply struct {
		Results [][]command.Atom
	}

	// Rytm is the service type; its method is called as "Rytm.Anything".
	Rytm struct {
		handler Handler
	}
)

func (r *Rytm) Anything(args Args, reply *Reply) error {
	if args.Selector != external.SelectorGet {
		return r.handler.Anything(args.Selector, args.Atoms)
	}
	return r.handler.GetTo(args.Atoms, command.OutletFunc(func(atoms []command.Atom) error {
		reply.Results = append(reply.Results, atoms)
		return nil
	}))
}

// Receiver serves h on addr and returns the address it listens on, which
// differs from addr when addr leaves the port to the system.
func Receiver(addr string, h Handler) (net.Addr, error) {
	server := rpc.NewServer()
	if err := server.Register(&Rytm{handler: h}); err != nil {
		return nil, errors.Wrap(err, "rpc.Register failed")
	}
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "net.Listen failed")
	}
	go http.Serve(l, server)
	return l.Addr(), nil
}

type Client struct {
	client *rpc.Client
}

func Dial(addr string) (*Client, error) {
	client, err := rpc.DialHTTP("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "rpc.DialHTTP failed")
	}
	return &Client{client: client}, nil
}

// Anything sends one message and returns the results of a get.
func (c *Client) Anything(selector string, atoms []command.Atom) ([][]command.Atom, error) {
	var reply Reply
	if err := c.client.Call("Rytm.Anything", Args{Selector: selector, Atoms: atoms}, &reply); err != nil {
		return nil, err
	}
	return reply.Results, nil
}

func (c *Client) Close() error { return c.client.Close() }
