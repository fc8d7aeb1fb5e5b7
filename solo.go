// Package solo is a deliberately sequential HTTP/1.1-over-TCP server: one
// connection is accepted, served one response and closed before the next one
// is even looked at. It answers from a static table of exact-match routes,
// with bodies coming from a pluggable key-to-bytes source.
//
// Known and accepted consequence of the design: a slow or silent peer stalls
// the whole server. Growing out of that limitation is exactly what this
// server is not trying to do
package solo

import (
	"errors"
	"fmt"
	"log"
	"net"

	"github.com/indigo-web/solo/body"
	"github.com/indigo-web/solo/config"
	"github.com/indigo-web/solo/http/status"
	"github.com/indigo-web/solo/internal/address"
	"github.com/indigo-web/solo/internal/render"
	"github.com/indigo-web/solo/internal/server/http"
	"github.com/indigo-web/solo/internal/server/tcp"
	"github.com/indigo-web/solo/router"
)

type ListenerConstructor func(network, addr string) (net.Listener, error)

type App struct {
	addr   address.Address
	cfg    config.Config
	hooks  hooks
	listen ListenerConstructor
	server *tcp.Server
}

// New returns a new App instance bound to addr on Serve. Panics on a
// malformed addr, as there is no point in continuing with one
func New(addr string) *App {
	parsed, err := address.Parse(addr)
	if err != nil {
		panic(fmt.Errorf("solo: listen: bad addr: %v", err))
	}

	return &App{
		addr:   parsed,
		cfg:    config.Default(),
		listen: net.Listen,
	}
}

// Tune replaces default settings. Zero fields are topped up with defaults
func (a *App) Tune(cfg config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// NotifyOnStart calls the callback at the moment the listener is bound and
// the accept loop is about to begin
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the accept loop has ended
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Listener overrides how the listening socket is constructed
func (a *App) Listener(constructor ListenerConstructor) *App {
	a.listen = constructor
	return a
}

// Serve binds the address and runs the accept loop until Stop is called or
// the listener fails. A bind failure is an unrecoverable configuration error
// and is returned immediately, without retrying
func (a *App) Serve(table *router.Table, source body.Source) error {
	sock, err := a.listen("tcp", a.addr.String())
	if err != nil {
		return err
	}

	for _, rule := range table.Rules() {
		log.Printf("solo: route %s %s -> %q", rule.Method, rule.Target, rule.Descriptor.Body)
	}

	httpServer := http.NewServer(table, source, render.NewEngine(a.cfg.HTTP.ResponseBuffPrealloc))
	// a single read buffer for the whole server: there is never more than one
	// connection being handled
	buff := make([]byte, a.cfg.NET.ReadBufferSize)

	a.server = tcp.NewServer(sock, func(conn net.Conn) {
		httpServer.ServeConn(tcp.NewClient(conn, buff))
	})

	callIfNotNil(a.hooks.OnStart)
	err = a.server.Start()
	callIfNotNil(a.hooks.OnStop)

	if errors.Is(err, status.ErrShutdown) {
		return nil
	}

	return err
}

// Stop closes the listener, letting Serve return. The connection being
// handled at that moment is still served till the end.
//
// NOTE: the call isn't blocking, so right after the method returned the
// server may still be finishing its last connection
func (a *App) Stop() {
	if a.server != nil {
		_ = a.server.Stop()
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
