// Package http drives one accepted connection through its whole lifecycle:
// read, parse, resolve, build, write, close
package http

import (
	"log"

	"github.com/indigo-web/solo/body"
	"github.com/indigo-web/solo/internal/parser"
	"github.com/indigo-web/solo/internal/render"
	"github.com/indigo-web/solo/internal/server/tcp"
	"github.com/indigo-web/solo/router"
)

type Server struct {
	table  *router.Table
	source body.Source
	engine *render.Engine
}

func NewServer(table *router.Table, source body.Source, engine *render.Engine) *Server {
	return &Server{
		table:  table,
		source: source,
		engine: engine,
	}
}

// ServeConn handles exactly one request and closes the client, no matter how
// far it got. Every failure is fatal for this connection only: the method
// never panics and never propagates errors to the accept loop.
//
// A peer that disconnects before sending anything gets no response at all,
// which is an accepted outcome of the single-read design
func (s *Server) ServeConn(client tcp.Client) {
	defer client.Close()

	data, err := client.Read()
	if err != nil || len(data) == 0 {
		return
	}

	line, _ := parser.Parse(data)
	desc := s.table.Resolve(line)

	content, err := s.source.Get(desc.Body)
	if err != nil {
		log.Printf("http: %s: body %q: %s", client.Remote(), desc.Body, err)
		return
	}

	if err = client.Write(s.engine.Render(desc.Status, content)); err != nil {
		log.Printf("http: %s: write: %s", client.Remote(), err)
	}
}
