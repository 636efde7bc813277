// Package http provides a resumable HTTP/1.x request header parser.
//
// Octets from a transport — typically a stream socket — can arrive in
// arbitrarily sized chunks. Parser.Feed accepts whatever chunk is at hand,
// preserves all state across calls, and reports InProgress, a completed
// Request plus the number of bytes consumed, or a typed parse error.
//
// # Thread Safety
//
// A single Parser is not safe for concurrent Feed calls; distinct Parsers
// are fully independent and may be driven from different goroutines without
// coordination.
//
// # Entry points
//
//   - NewParser / Parser.Feed — the raw, allocation-conscious streaming API.
//   - NewDecoder — an io.Reader-based adapter for callers that would rather
//     hand over a stream than manage their own read loop.
//   - Validate — checks that a complete, already-buffered message is a
//     syntactically valid request header block.
//   - RequestToNode — bridges a completed Request into a shape-core AST for
//     callers that want a generic tree view instead of the typed struct.
package http

import (
	"strconv"
	"strings"

	"github.com/intuitivelabs/bytescase"
	"github.com/shapestone/shape-http/internal/streamparser"
)

// Method is the closed set of request methods this parser recognizes.
type Method = streamparser.Method

// The recognized request methods. Any other token — including the singular
// "OPTION" — is ErrorBadMethod.
const (
	MethodUnknown = streamparser.MethodUnknown
	MethodOptions = streamparser.MethodOptions
	MethodGet     = streamparser.MethodGet
	MethodPost    = streamparser.MethodPost
	MethodPut     = streamparser.MethodPut
	MethodDelete  = streamparser.MethodDelete
	MethodHead    = streamparser.MethodHead
	MethodTrace   = streamparser.MethodTrace
	MethodConnect = streamparser.MethodConnect
	MethodPatch   = streamparser.MethodPatch
)

// Protocol is the closed set of HTTP versions recognized in the request line.
type Protocol = streamparser.Protocol

const (
	ProtocolUnknown = streamparser.ProtocolUnknown
	ProtocolHTTP10  = streamparser.ProtocolHTTP10
	ProtocolHTTP11  = streamparser.ProtocolHTTP11
)

// Header is a single header field-name/field-value pair, in request order.
type Header struct {
	Key   string
	Value string
}

// Headers is an insertion-ordered, repeatable list of header fields.
//
// Lookups (Get, Values, Set, Del) are ASCII case-insensitive: comparison
// uses bytescase.CmpEq rather than strings.EqualFold so two header names
// are compared without the UTF-8 case-folding strings.EqualFold performs,
// which matters here because field names are ASCII tokens, not
// natural-language text. Original case is always preserved in storage.
type Headers []Header

func headerEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return bytescase.CmpEq([]byte(a), []byte(b))
}

// Get returns the first value stored for key, or "" if key is absent.
func (h Headers) Get(key string) string {
	for _, hdr := range h {
		if headerEqualFold(hdr.Key, key) {
			return hdr.Value
		}
	}
	return ""
}

// Values returns every value stored for key, in request order.
func (h Headers) Values(key string) []string {
	var vals []string
	for _, hdr := range h {
		if headerEqualFold(hdr.Key, key) {
			vals = append(vals, hdr.Value)
		}
	}
	return vals
}

// Set replaces the first header matching key (removing any duplicates), or
// appends a new header if key is absent.
func (h *Headers) Set(key, value string) {
	for i, hdr := range *h {
		if headerEqualFold(hdr.Key, key) {
			(*h)[i].Value = value
			j := i + 1
			for j < len(*h) {
				if headerEqualFold((*h)[j].Key, key) {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Key: key, Value: value})
}

// Add appends a header without disturbing any existing value for key.
func (h *Headers) Add(key, value string) {
	*h = append(*h, Header{Key: key, Value: value})
}

// Del removes every header matching key.
func (h *Headers) Del(key string) {
	j := 0
	for _, hdr := range *h {
		if !headerEqualFold(hdr.Key, key) {
			(*h)[j] = hdr
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a shallow copy of h; the returned slice shares no backing
// array with h.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// Map collapses h into a name-to-value mapping. When a name repeats, the
// last occurrence wins, per this parser's completion semantics.
func (h Headers) Map() map[string]string {
	m := make(map[string]string, len(h))
	for _, hdr := range h {
		m[hdr.Key] = hdr.Value
	}
	return m
}

// Request is the value object a Parser builds and hands off on Complete.
// The parser retains no reference to it afterwards.
type Request struct {
	Method   Method
	URL      []byte // opaque request-target, not URL-decoded
	Protocol Protocol
	Headers  Headers
}

// GetContentLength returns the parsed, non-negative value of the
// Content-Length header, or a typed error if it is missing or malformed.
func (r *Request) GetContentLength() (int64, error) {
	v, ok := findHeader(r.Headers, "Content-Length")
	if !ok {
		return 0, ErrHeaderMissing
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || n < 0 {
		return 0, ErrHeaderMalformed
	}
	return n, nil
}

func findHeader(h Headers, key string) (string, bool) {
	for _, hdr := range h {
		if headerEqualFold(hdr.Key, key) {
			return hdr.Value, true
		}
	}
	return "", false
}
