package status

/*
INFO: the code list is a trimmed-down copy of net/http/status.go. Kept in an
own package because of unwanted name collisions between solo/http and net/http
*/

type (
	Code   uint16
	Status string
)

const (
	OK                  Code = 200 // RFC 9110, 15.3.1
	BadRequest          Code = 400 // RFC 9110, 15.5.1
	NotFound            Code = 404 // RFC 9110, 15.5.5
	InternalServerError Code = 500 // RFC 9110, 15.6.1
	ServiceUnavailable  Code = 503 // RFC 9110, 15.6.4
)

func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case InternalServerError:
		return "Internal Server Error"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return "Unknown Status Code"
	}
}

// Line renders a complete status line for the code, e.g. "HTTP/1.1 200 OK".
// Useful for building route descriptors programmatically
func Line(code Code) string {
	return "HTTP/1.1 " + itoa(code) + " " + string(Text(code))
}

func itoa(code Code) string {
	// status codes are always three digits
	return string([]byte{
		'0' + byte(code/100),
		'0' + byte(code/10%10),
		'0' + byte(code%10),
	})
}
