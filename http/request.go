package http

import (
	"github.com/indigo-web/solo/http/method"
	"github.com/indigo-web/solo/http/proto"
)

// RequestLine is the only part of a request the server interprets. It is
// produced once per connection from a single bounded read and consumed
// immediately by routing; it never outlives the connection handler
type RequestLine struct {
	Method method.Method
	Target string
	Proto  proto.Proto
}
