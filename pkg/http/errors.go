package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shapestone/shape-http/internal/streamparser"
)

// ErrorKind is the closed taxonomy of ways Feed can reject input.
type ErrorKind = streamparser.ErrorKind

const (
	// KindSyntax is a grammar violation in a structural position: EOL
	// sequencing, an empty field name, a folded line with no preceding
	// header.
	KindSyntax         = streamparser.KindSyntax
	KindBadMethod      = streamparser.KindBadMethod
	KindBadURL         = streamparser.KindBadURL
	KindBadProtocol    = streamparser.KindBadProtocol
	KindBadHeader      = streamparser.KindBadHeader
	KindBadHeaderValue = streamparser.KindBadHeaderValue
)

// ParseError represents an error that occurred during request-header
// parsing. Once returned, the Parser that produced it is spent.
type ParseError struct {
	Kind   ErrorKind
	Offset int // byte offset within the buffer most recently fed
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("http: %s at offset %d: %s", e.Kind, e.Offset, e.Msg)
	}
	return fmt.Sprintf("http: %s at offset %d", e.Kind, e.Offset)
}

func newParseError(err *streamparser.ParseError) *ParseError {
	return &ParseError{Kind: err.Kind, Offset: err.Offset, Msg: err.Msg}
}

// Status maps an ErrorKind to the HTTP status a response generator should
// use when reporting the failure back to the client, per this parser's
// collaborator contract: BadMethod->405, BadProtocol->505, everything else
// (including the generic syntax Error) ->400.
func (e *ParseError) Status() int {
	switch e.Kind {
	case KindBadMethod:
		return http.StatusMethodNotAllowed
	case KindBadProtocol:
		return http.StatusHTTPVersionNotSupported
	default:
		return http.StatusBadRequest
	}
}

// ErrHeaderMissing is returned by Request.GetContentLength when no
// Content-Length header is present.
var ErrHeaderMissing = errors.New("http: header not found")

// ErrHeaderMalformed is returned by Request.GetContentLength when
// Content-Length is present but is not a valid non-negative integer.
var ErrHeaderMalformed = errors.New("http: header value invalid")

// ErrHeaderTooLarge is returned by a size-limited Parser (see
// NewParserWithLimit) when the header section exceeds the configured cap.
// This is a production-embedding concern layered on top of the core state
// machine, which itself enforces no size ceiling.
var ErrHeaderTooLarge = errors.New("http: header section exceeds configured limit")

// ErrIncompleteRequest is returned by Validate and ValidateReader when the
// supplied bytes end before a blank-line terminator is reached. Feed itself
// reports this as InProgress rather than an error, since a stream parser
// expects more to arrive later; Validate has no "later" to wait for.
var ErrIncompleteRequest = errors.New("http: incomplete request header section")
