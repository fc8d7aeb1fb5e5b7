package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// ErrShutdown is returned by the tcp server when the listener was closed
	// on purpose, so the caller can tell a deliberate stop from a failure
	ErrShutdown = NewError(ServiceUnavailable, "server is shutting down")

	// ErrNotFound is wrapped by body sources on a missed lookup
	ErrNotFound = NewError(NotFound, "not found")
)
