package http

import (
	"bytes"
	"fmt"
	"io"
)

// defaultReadChunk is the size of each Read call a Decoder issues against
// its underlying stream. It has no bearing on correctness — Feed accepts
// any chunk size — only on how many round trips a large header section
// costs.
const defaultReadChunk = 4096

// Decoder adapts the resumable Parser to an io.Reader, for callers that
// would rather hand over a stream than manage their own read loop. It
// drives the same Feed calls the raw Parser API exposes, so both entry
// points share one state machine implementation.
//
// A single Decoder is not safe for concurrent use; create one per
// connection or serialize access externally.
type Decoder struct {
	r              io.Reader
	maxHeaderBytes int
}

// NewDecoder returns a Decoder reading from r with no header-size ceiling.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// NewDecoderWithLimit returns a Decoder that fails with ErrHeaderTooLarge
// once more than maxHeaderBytes have been read without completing a
// request header section.
func NewDecoderWithLimit(r io.Reader, maxHeaderBytes int) *Decoder {
	return &Decoder{r: r, maxHeaderBytes: maxHeaderBytes}
}

// DecodeRequest reads exactly one request header section from the
// underlying stream and returns it, along with a Reader yielding whatever
// bytes follow the blank-line terminator — the first bytes of the request
// body, if any — chained with the rest of the underlying stream. Those
// bytes are never re-parsed as headers: they belong entirely to the caller.
func (dec *Decoder) DecodeRequest() (*Request, io.Reader, error) {
	var p *Parser
	if dec.maxHeaderBytes > 0 {
		p = NewParserWithLimit(dec.maxHeaderBytes)
	} else {
		p = NewParser()
	}

	chunk := make([]byte, defaultReadChunk)
	for {
		n, readErr := dec.r.Read(chunk)
		if n > 0 {
			req, consumed, err := p.Feed(chunk[:n])
			if err != nil {
				return nil, nil, err
			}
			if req != nil {
				leftover := append([]byte(nil), chunk[consumed:n]...)
				return req, io.MultiReader(bytes.NewReader(leftover), dec.r), nil
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil, nil, fmt.Errorf("http: decode request: %w", io.ErrUnexpectedEOF)
			}
			return nil, nil, fmt.Errorf("http: decode request: %w", readErr)
		}
	}
}
