// Package router maps request lines onto response descriptors. Matching is
// literal: a rule fires only when both method and target are byte-identical
// to its pattern. No globs, no parameters, no pattern engine.
package router

import (
	"fmt"

	"github.com/indigo-web/solo/http"
	"github.com/indigo-web/solo/http/method"
)

const (
	// DefaultNotFoundStatus is the status line of the built-in fallback rule
	DefaultNotFoundStatus = "HTTP/1.1 404 NOT FOUND"
	// DefaultNotFoundKey is the body key the built-in fallback rule points at
	DefaultNotFoundKey = "404"
)

// Descriptor is what a matched rule resolves to: a verbatim status line and
// an opaque key the response body is looked up by. Descriptors are configured
// at startup and never mutated afterwards
type Descriptor struct {
	Status string
	Body   string
}

type Rule struct {
	Method     method.Method
	Target     string
	Descriptor Descriptor
}

// Table is an ordered list of exact-match rules plus a fallback that always
// matches. It is read-only after startup and safe to share
type Table struct {
	rules    []Rule
	fallback Descriptor
}

func NewTable() *Table {
	return &Table{
		fallback: Descriptor{
			Status: DefaultNotFoundStatus,
			Body:   DefaultNotFoundKey,
		},
	}
}

// Route appends an exact-match rule. Earlier rules take priority over later
// ones, although patterns are expected to be disjoint anyway.
//
// Panics on rules that could never match: an Unknown method or a target not
// starting with a slash are configuration mistakes, not runtime conditions
func (t *Table) Route(m method.Method, target string, d Descriptor) *Table {
	if m == method.Unknown {
		panic(fmt.Errorf("router: rule for %s: unknown method", target))
	}

	if len(target) == 0 || target[0] != '/' {
		panic(fmt.Errorf("router: rule target must start with a slash, got %q", target))
	}

	t.rules = append(t.rules, Rule{Method: m, Target: target, Descriptor: d})

	return t
}

// Get is a shorthand for Route(method.GET, ...)
func (t *Table) Get(target string, d Descriptor) *Table {
	return t.Route(method.GET, target, d)
}

// Fallback replaces the built-in not-found descriptor
func (t *Table) Fallback(d Descriptor) *Table {
	t.fallback = d
	return t
}

// Resolve returns the descriptor of the first rule matching the line, or the
// fallback descriptor if none does. It is total: there is always exactly one
// answer and never an error. An unrecognized (zero) line matches no rule, as
// Route refuses rules it could ever be equal to
func (t *Table) Resolve(line http.RequestLine) Descriptor {
	for _, rule := range t.rules {
		if rule.Method == line.Method && rule.Target == line.Target {
			return rule.Descriptor
		}
	}

	return t.fallback
}

// Rules returns the configured rules in priority order. The fallback is not
// included. The returned slice is the table's own, callers must not mutate it
func (t *Table) Rules() []Rule {
	return t.rules
}
