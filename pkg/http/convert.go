package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	internalast "github.com/shapestone/shape-http/internal/ast"
	"github.com/shapestone/shape-http/internal/streamparser"
)

// Parse parses a complete, already-buffered request header section and
// returns its shape-core AST representation. It returns an error if input
// is not a syntactically valid header section or ends before the
// blank-line terminator.
func Parse(input string) (ast.SchemaNode, error) {
	return internalast.NewParser([]byte(input)).Parse()
}

// ParseReader reads all of r and parses it as a request header section.
// See Parse for the parsing semantics.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// RequestToNode converts a Request to a shape-core AST ObjectNode.
func RequestToNode(req *Request) ast.SchemaNode {
	return internalast.RequestToNode(&streamparser.Request{
		Method:   req.Method,
		URL:      req.URL,
		Protocol: req.Protocol,
		Headers:  toStreamHeaders(req.Headers),
	})
}

// NodeToRequest converts a shape-core AST ObjectNode back to a Request.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	sreq, err := internalast.NodeToRequest(node)
	if err != nil {
		return nil, err
	}
	return &Request{
		Method:   sreq.Method,
		URL:      sreq.URL,
		Protocol: sreq.Protocol,
		Headers:  convertHeaders(sreq.Headers),
	}, nil
}

// NodeToInterface converts an AST node to native Go types (map, slice,
// scalar), for callers that want to treat a parsed request as loosely
// typed data rather than working with ast.SchemaNode directly.
func NodeToInterface(node ast.SchemaNode) interface{} {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return n.Value()
	case *ast.ArrayDataNode:
		elements := n.Elements()
		arr := make([]interface{}, len(elements))
		for i, elem := range elements {
			arr[i] = NodeToInterface(elem)
		}
		return arr
	case *ast.ObjectNode:
		props := n.Properties()
		m := make(map[string]interface{}, len(props))
		for k, v := range props {
			m[k] = NodeToInterface(v)
		}
		return m
	default:
		return nil
	}
}

func toStreamHeaders(hdrs Headers) []streamparser.Header {
	if hdrs == nil {
		return nil
	}
	out := make([]streamparser.Header, len(hdrs))
	for i, h := range hdrs {
		out[i] = streamparser.Header{Key: h.Key, Value: h.Value}
	}
	return out
}
