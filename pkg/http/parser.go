package http

import "github.com/shapestone/shape-http/internal/streamparser"

// Parser is a resumable, single-threaded HTTP/1.x request header parser.
// A fresh Parser starts at the beginning of a request line; each Feed call
// advances it using exactly the bytes passed in, never blocking and never
// retaining a reference to buf once Feed returns.
//
// A Parser is not safe for concurrent Feed calls. Distinct Parsers are
// fully independent and may run on different goroutines without
// coordination.
type Parser struct {
	core           *streamparser.Parser
	maxHeaderBytes int
	fed            int
}

// NewParser returns a Parser with no header-size ceiling, matching the core
// state machine's own behavior: it is the embedder's responsibility to
// impose one in production (see NewParserWithLimit).
func NewParser() *Parser {
	return &Parser{core: streamparser.New()}
}

// NewParserWithLimit returns a Parser that fails with ErrHeaderTooLarge once
// more than maxHeaderBytes have been fed across all calls without reaching
// Complete. A non-positive limit means unbounded, identical to NewParser.
func NewParserWithLimit(maxHeaderBytes int) *Parser {
	return &Parser{core: streamparser.New(), maxHeaderBytes: maxHeaderBytes}
}

// Feed advances the parser with buf and returns one of three outcomes:
//
//   - (nil, 0, nil): more input is needed (InProgress).
//   - (req, n, nil): the header section is complete; n is the number of
//     bytes of buf consumed (0 < n <= len(buf)). buf[n:] belongs to the
//     caller — typically the first bytes of the request body.
//   - (nil, 0, err): a *ParseError (or, if a size limit was configured,
//     ErrHeaderTooLarge). The Parser is spent; discard it.
func (p *Parser) Feed(buf []byte) (*Request, int, error) {
	req, n, err := p.core.Feed(buf)
	if err != nil {
		if pe, ok := err.(*streamparser.ParseError); ok {
			return nil, 0, newParseError(pe)
		}
		return nil, 0, err
	}

	// Only count bytes that are actually part of the header section: while
	// still InProgress the whole of buf is header data, but once Complete,
	// buf[n:] is the start of the body (or whatever else the caller sent in
	// the same read) and must not count against the header-size ceiling.
	if req == nil {
		p.fed += len(buf)
	} else {
		p.fed += n
	}
	if p.maxHeaderBytes > 0 && p.fed > p.maxHeaderBytes {
		return nil, 0, ErrHeaderTooLarge
	}

	if req == nil {
		return nil, 0, nil
	}
	return &Request{
		Method:   req.Method,
		URL:      req.URL,
		Protocol: req.Protocol,
		Headers:  convertHeaders(req.Headers),
	}, n, nil
}

func convertHeaders(hdrs []streamparser.Header) Headers {
	if hdrs == nil {
		return nil
	}
	out := make(Headers, len(hdrs))
	for i, h := range hdrs {
		out[i] = Header{Key: h.Key, Value: h.Value}
	}
	return out
}
