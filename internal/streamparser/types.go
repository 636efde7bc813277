package streamparser

// Method is the closed set of request methods this parser recognizes.
// Any other token, including the singular "OPTION", is ErrorBadMethod.
type Method uint8

const (
	MethodUnknown Method = iota
	MethodOptions
	MethodGet
	MethodPost
	MethodPut
	MethodDelete
	MethodHead
	MethodTrace
	MethodConnect
	MethodPatch
)

var methodNames = [...]string{
	MethodUnknown: "",
	MethodOptions: "OPTIONS",
	MethodGet:     "GET",
	MethodPost:    "POST",
	MethodPut:     "PUT",
	MethodDelete:  "DELETE",
	MethodHead:    "HEAD",
	MethodTrace:   "TRACE",
	MethodConnect: "CONNECT",
	MethodPatch:   "PATCH",
}

// String returns the wire token for m, or "" for MethodUnknown.
func (m Method) String() string {
	if int(m) >= len(methodNames) {
		return ""
	}
	return methodNames[m]
}

var methodTokens = map[string]Method{
	"OPTIONS": MethodOptions,
	"GET":     MethodGet,
	"POST":    MethodPost,
	"PUT":     MethodPut,
	"DELETE":  MethodDelete,
	"HEAD":    MethodHead,
	"TRACE":   MethodTrace,
	"CONNECT": MethodConnect,
	"PATCH":   MethodPatch,
}

// methodFromBytes decodes a method lexeme. The second return value is false
// for any token outside the nine recognized methods (including "OPTION").
func methodFromBytes(b []byte) (Method, bool) {
	m, ok := methodTokens[string(b)]
	return m, ok
}

// Protocol is the closed set of HTTP versions this parser recognizes in the
// request line.
type Protocol uint8

const (
	ProtocolUnknown Protocol = iota
	ProtocolHTTP10
	ProtocolHTTP11
)

func (p Protocol) String() string {
	switch p {
	case ProtocolHTTP10:
		return "HTTP/1.0"
	case ProtocolHTTP11:
		return "HTTP/1.1"
	default:
		return ""
	}
}

func protocolFromBytes(b []byte) (Protocol, bool) {
	switch string(b) {
	case "HTTP/1.0":
		return ProtocolHTTP10, true
	case "HTTP/1.1":
		return ProtocolHTTP11, true
	default:
		return ProtocolUnknown, false
	}
}

// Header is a single (key, value) pair in request-line order.
type Header struct {
	Key   string
	Value string
}

// Request is the value object a Parser builds and hands off at Complete.
// The parser retains no reference to it afterwards.
type Request struct {
	Method   Method
	URL      []byte // opaque request-target, not URL-decoded
	Protocol Protocol
	Headers  []Header
}
