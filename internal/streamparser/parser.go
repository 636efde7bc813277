// Package streamparser implements the resumable, byte-at-a-time state
// machine at the heart of this module: it ingests octets in whatever
// chunks a transport hands over and reports InProgress, a completed
// Request plus the number of bytes consumed, or a typed parse error.
//
// A Parser is a pure, single-threaded state transformer. It performs no
// I/O, never blocks, and holds no reference to a buffer passed to Feed
// once Feed returns. Distinct Parsers are fully independent; a single
// Parser is not safe for concurrent Feed calls.
package streamparser

import "unicode/utf8"

// Parser holds the entire state needed to resume parsing across calls to
// Feed: the current lexical state, the in-progress lexeme, the captured
// request-line fields, and the headers assembled so far.
type Parser struct {
	state    parseState
	scratch  []byte
	method   Method
	url      []byte
	protocol Protocol
	key      string
	headers  []Header
}

// New returns a Parser positioned at the start of a request line.
func New() *Parser {
	return &Parser{state: stateMethod}
}

// Feed consumes bytes from buf, advancing internal state one octet at a
// time, and returns exactly one of three outcomes:
//
//   - (nil, 0, nil): the whole buffer was consumed and more input is
//     needed (InProgress).
//   - (req, n, nil): the header section completed; n is the number of
//     bytes of buf belonging to the request (0 < n <= len(buf)). Any
//     remaining bytes in buf belong to the caller.
//   - (nil, 0, err): a grammar violation occurred; err is a *ParseError
//     naming the ErrorKind. The Parser is now spent and must be
//     discarded; further Feed calls have undefined behavior.
func (p *Parser) Feed(buf []byte) (*Request, int, error) {
	consumed := 0
	for _, b := range buf {
		consumed++
		ct := classify(b)

		switch p.state {
		case stateMethod:
			switch ct {
			case charOther:
				p.scratch = append(p.scratch, b)
			case charSpace:
				if !utf8.Valid(p.scratch) {
					return nil, 0, newErr(KindBadMethod, consumed, "non-UTF-8 method")
				}
				m, ok := methodFromBytes(p.scratch)
				if !ok {
					return nil, 0, newErr(KindBadMethod, consumed, "unrecognized method")
				}
				p.method = m
				p.scratch = p.scratch[:0]
				p.state = stateURL
			default:
				return nil, 0, newErr(KindSyntax, consumed, "unexpected byte in method")
			}

		case stateURL:
			switch ct {
			case charOther, charColon:
				p.scratch = append(p.scratch, b)
			case charSpace:
				if !utf8.Valid(p.scratch) {
					return nil, 0, newErr(KindBadURL, consumed, "non-UTF-8 URL")
				}
				p.url = append([]byte(nil), p.scratch...)
				p.scratch = p.scratch[:0]
				p.state = stateProtocol
			default:
				return nil, 0, newErr(KindSyntax, consumed, "unexpected byte in URL")
			}

		case stateProtocol:
			switch ct {
			case charOther:
				p.scratch = append(p.scratch, b)
			case charCR:
				proto, ok := protocolFromBytes(p.scratch)
				if !ok {
					return nil, 0, newErr(KindBadProtocol, consumed, "unrecognized protocol")
				}
				p.protocol = proto
				p.scratch = p.scratch[:0]
				p.state = stateProtocolEOL
			case charLF:
				proto, ok := protocolFromBytes(p.scratch)
				if !ok {
					return nil, 0, newErr(KindBadProtocol, consumed, "unrecognized protocol")
				}
				p.protocol = proto
				p.scratch = p.scratch[:0]
				p.state = stateKeyStart
			default:
				return nil, 0, newErr(KindBadProtocol, consumed, "unexpected byte in protocol")
			}

		case stateProtocolEOL:
			if ct != charLF {
				return nil, 0, newErr(KindSyntax, consumed, "expected LF after request-line CR")
			}
			p.state = stateKeyStart

		case stateKeyStart:
			switch ct {
			case charSpace:
				p.state = stateWrappedValueStart
			case charLF:
				return p.complete(), consumed, nil
			case charCR:
				p.state = stateFinalEOL
			case charOther:
				p.scratch = append(p.scratch, b)
				p.state = stateKey
			case charColon:
				return nil, 0, newErr(KindSyntax, consumed, "empty header field name")
			}

		case stateKey:
			switch ct {
			case charOther:
				p.scratch = append(p.scratch, b)
			case charColon:
				if !utf8.Valid(p.scratch) {
					return nil, 0, newErr(KindBadHeader, consumed, "non-UTF-8 header name")
				}
				p.key = internHeaderName(p.scratch)
				p.scratch = p.scratch[:0]
				p.state = stateValueStart
			default:
				return nil, 0, newErr(KindSyntax, consumed, "unexpected byte in header name")
			}

		case stateValueStart:
			switch ct {
			case charSpace:
				// strip leading OWS
			case charOther:
				p.scratch = append(p.scratch, b)
				p.state = stateValue
			default:
				return nil, 0, newErr(KindSyntax, consumed, "empty header value")
			}

		case stateValue:
			switch ct {
			case charOther, charSpace, charColon:
				p.scratch = append(p.scratch, b)
			case charCR:
				if err := p.commitValue(consumed); err != nil {
					return nil, 0, err
				}
				p.state = stateValueEOL
			case charLF:
				if err := p.commitValue(consumed); err != nil {
					return nil, 0, err
				}
				p.state = stateKeyStart
			}

		case stateValueEOL:
			if ct != charLF {
				return nil, 0, newErr(KindSyntax, consumed, "expected LF after header CR")
			}
			p.state = stateKeyStart

		case stateWrappedValueStart:
			switch ct {
			case charSpace:
				// strip additional fold whitespace
			case charOther, charColon:
				p.scratch = append(p.scratch, ' ', b)
				p.state = stateWrappedValue
			case charCR:
				p.state = stateWrappedValueEOL
			case charLF:
				return nil, 0, newErr(KindSyntax, consumed, "bare LF in folded header continuation")
			}

		case stateWrappedValue:
			switch ct {
			case charOther, charColon, charSpace:
				p.scratch = append(p.scratch, b)
			case charCR:
				if err := p.commitWrapped(consumed); err != nil {
					return nil, 0, err
				}
				p.state = stateWrappedValueEOL
			case charLF:
				return nil, 0, newErr(KindSyntax, consumed, "bare LF in folded header continuation")
			}

		case stateWrappedValueEOL:
			if ct != charLF {
				return nil, 0, newErr(KindSyntax, consumed, "expected LF after folded header CR")
			}
			p.state = stateKeyStart

		case stateFinalEOL:
			if ct != charLF {
				return nil, 0, newErr(KindSyntax, consumed, "expected LF to end headers")
			}
			return p.complete(), consumed, nil
		}
	}
	return nil, 0, nil
}

// commitValue closes out the Value state: the scratch buffer becomes the
// value of a brand new header pair.
func (p *Parser) commitValue(offset int) error {
	if !utf8.Valid(p.scratch) {
		return newErr(KindBadHeaderValue, offset, "non-UTF-8 header value")
	}
	p.headers = append(p.headers, Header{Key: p.key, Value: string(p.scratch)})
	p.scratch = p.scratch[:0]
	return nil
}

// commitWrapped closes out a WrappedValue continuation line: the scratch
// buffer (already prefixed with a single joining space by
// stateWrappedValueStart) is appended to the last header's value.
func (p *Parser) commitWrapped(offset int) error {
	if !utf8.Valid(p.scratch) {
		return newErr(KindBadHeaderValue, offset, "non-UTF-8 header value")
	}
	if len(p.headers) == 0 {
		return newErr(KindSyntax, offset, "folded continuation with no preceding header")
	}
	last := &p.headers[len(p.headers)-1]
	last.Value += string(p.scratch)
	p.scratch = p.scratch[:0]
	return nil
}

// complete builds the Request from accumulated state. The headers slice is
// handed to the caller and cleared here so the spent Parser holds no
// reference to it.
func (p *Parser) complete() *Request {
	req := &Request{
		Method:   p.method,
		URL:      p.url,
		Protocol: p.protocol,
		Headers:  p.headers,
	}
	p.headers = nil
	p.url = nil
	return req
}
