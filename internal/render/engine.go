// Package render serializes responses. The wire format in scope is the bare
// minimum of the protocol: a verbatim status line, an empty header block and
// the body appended as-is. End of body is signaled by connection close, so no
// Content-Length is ever computed
package render

var crlf = []byte("\r\n")

type Engine struct {
	buff []byte
}

func NewEngine(prealloc int) *Engine {
	return &Engine{
		buff: make([]byte, 0, prealloc),
	}
}

// Render assembles status line, CRLF CRLF and the body into a single
// contiguous byte sequence ready for transmission. The returned slice is
// backed by an internal buffer and stays valid until the next call
func (e *Engine) Render(statusLine string, body []byte) []byte {
	e.buff = e.buff[:0]
	e.buff = append(e.buff, statusLine...)
	e.crlf()
	e.crlf()
	e.buff = append(e.buff, body...)

	return e.buff
}

func (e *Engine) crlf() {
	e.buff = append(e.buff, crlf...)
}
