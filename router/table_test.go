package router

import (
	"testing"

	"github.com/indigo-web/solo/http"
	"github.com/indigo-web/solo/http/method"
	"github.com/indigo-web/solo/http/status"
	"github.com/stretchr/testify/require"
)

func line(m method.Method, target string) http.RequestLine {
	return http.RequestLine{Method: m, Target: target}
}

func TestResolve(t *testing.T) {
	hello := Descriptor{Status: status.Line(status.OK), Body: "hello"}
	sleep := Descriptor{Status: status.Line(status.OK), Body: "sleep"}
	table := NewTable().
		Get("/", hello).
		Get("/sleep", sleep)

	t.Run("exact match", func(t *testing.T) {
		require.Equal(t, hello, table.Resolve(line(method.GET, "/")))
		require.Equal(t, sleep, table.Resolve(line(method.GET, "/sleep")))
	})

	t.Run("method must match too", func(t *testing.T) {
		desc := table.Resolve(line(method.POST, "/"))
		require.Equal(t, DefaultNotFoundStatus, desc.Status)
		require.Equal(t, DefaultNotFoundKey, desc.Body)
	})

	t.Run("no partial target matches", func(t *testing.T) {
		for _, target := range []string{"/sle", "/sleepy", "/sleep/", "//", ""} {
			desc := table.Resolve(line(method.GET, target))
			require.Equal(t, DefaultNotFoundStatus, desc.Status, target)
		}
	})

	t.Run("unrecognized line hits fallback", func(t *testing.T) {
		require.Equal(t, DefaultNotFoundStatus, table.Resolve(http.RequestLine{}).Status)
	})

	t.Run("first match wins", func(t *testing.T) {
		first := Descriptor{Status: status.Line(status.OK), Body: "first"}
		second := Descriptor{Status: status.Line(status.OK), Body: "second"}
		shadowed := NewTable().
			Get("/dup", first).
			Get("/dup", second)

		require.Equal(t, first, shadowed.Resolve(line(method.GET, "/dup")))
	})

	t.Run("rules keep registration order", func(t *testing.T) {
		rules := table.Rules()
		require.Len(t, rules, 2)
		require.Equal(t, Rule{Method: method.GET, Target: "/", Descriptor: hello}, rules[0])
		require.Equal(t, Rule{Method: method.GET, Target: "/sleep", Descriptor: sleep}, rules[1])
	})

	t.Run("custom fallback", func(t *testing.T) {
		gone := Descriptor{Status: "HTTP/1.1 404 NOT FOUND", Body: "gone"}
		require.Equal(t, gone, NewTable().Fallback(gone).Resolve(line(method.GET, "/nope")))
	})
}

func TestRouteValidation(t *testing.T) {
	t.Run("unknown method", func(t *testing.T) {
		require.Panics(t, func() {
			NewTable().Route(method.Unknown, "/", Descriptor{})
		})
	})

	t.Run("target without slash", func(t *testing.T) {
		require.Panics(t, func() {
			NewTable().Get("oops", Descriptor{})
		})
	})
}
