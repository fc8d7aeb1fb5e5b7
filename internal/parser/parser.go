// Package parser extracts a request line out of a single bounded read.
//
// There is no streaming state machine here on purpose: the server performs
// exactly one read per connection, so whatever fits into the read buffer is
// all the parser will ever see. Truncated or malformed input degrades to an
// unrecognized line instead of an error.
package parser

import (
	"bytes"

	"github.com/indigo-web/solo/http"
	"github.com/indigo-web/solo/http/method"
	"github.com/indigo-web/solo/http/proto"
	"github.com/indigo-web/utils/uf"
)

var crlf = []byte("\r\n")

// Parse interprets the leading bytes of data as an HTTP/1.1 request line.
// If no CRLF is found, the whole buffer is taken as the candidate line.
// The second return value reports whether all three fields (method, target,
// protocol) were present; when it is false, the returned line is zero and
// matches no route by construction.
//
// The input is treated as opaque bytes: invalid UTF-8 never faults, it just
// fails to match anything later on
func Parse(data []byte) (line http.RequestLine, ok bool) {
	candidate := data
	if terminator := bytes.Index(data, crlf); terminator != -1 {
		candidate = data[:terminator]
	} else if n := len(candidate); n > 0 && candidate[n-1] == '\r' {
		// the read boundary fell right in between CR and LF
		candidate = candidate[:n-1]
	}

	sp := bytes.IndexByte(candidate, ' ')
	if sp == -1 {
		return line, false
	}

	lastSp := bytes.LastIndexByte(candidate, ' ')
	if lastSp == sp {
		// a single space means two fields at most
		return line, false
	}

	return http.RequestLine{
		Method: method.Parse(uf.B2S(candidate[:sp])),
		Target: uf.B2S(candidate[sp+1 : lastSp]),
		Proto:  proto.FromBytes(candidate[lastSp+1:]),
	}, true
}
