package status

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestLine(t *testing.T) {
	require.Equal(t, "HTTP/1.1 200 OK", Line(OK))
	require.Equal(t, "HTTP/1.1 404 Not Found", Line(NotFound))
	require.Equal(t, "HTTP/1.1 500 Internal Server Error", Line(InternalServerError))
}

func TestText(t *testing.T) {
	require.Equal(t, Status("Unknown Status Code"), Text(Code(999)))
}
