package http

import (
	"bytes"
	"io"
)

// Validate checks that input's header section — the request line through
// the blank-line terminator — is syntactically valid per this parser's
// grammar. Any bytes after the terminator (a request body, or pipelined
// octets) are ignored, matching Feed's own "remaining bytes belong to the
// caller" contract. Returns nil if valid, the *ParseError identifying the
// problem, or ErrIncompleteRequest if input ends before the terminator.
func Validate(input string) error {
	req, _, err := NewParser().Feed([]byte(input))
	if err != nil {
		return err
	}
	if req == nil {
		return ErrIncompleteRequest
	}
	return nil
}

// ValidateReader reads all of r and validates it as a request header
// section. See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return Validate(string(data))
}

// readAll reads all data from r.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
