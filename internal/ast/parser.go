// Package ast bridges a completed request header section into shape-core's
// generic AST node types, for callers that want a tree view instead of the
// typed streamparser.Request struct.
//
// A request is mapped to an ObjectNode with the following shape:
//
//	{ "type": "request", "method": "GET", "url": "/api",
//	  "protocol": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...] }
package ast

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-http/internal/streamparser"
)

var zeroPos = ast.Position{}

// Parser runs the resumable streamparser core over an already-buffered
// request and bridges the result into an AST node. It exists for callers
// who have a complete header section in hand and want the tree view
// directly, without driving Feed themselves.
type Parser struct {
	data []byte
}

// NewParser creates an AST parser for the given buffered request data.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the request header section and returns an AST ObjectNode.
// It returns an error if the data is not a syntactically valid header
// section, or if it is incomplete (no blank-line terminator present).
func (p *Parser) Parse() (ast.SchemaNode, error) {
	sp := streamparser.New()
	req, _, err := sp.Feed(p.data)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("ast: incomplete request header section")
	}
	return RequestToNode(req), nil
}

// RequestToNode converts a streamparser.Request to an AST ObjectNode.
func RequestToNode(req *streamparser.Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":     ast.NewLiteralNode("request", zeroPos),
		"method":   ast.NewLiteralNode(req.Method.String(), zeroPos),
		"url":      ast.NewLiteralNode(string(req.URL), zeroPos),
		"protocol": ast.NewLiteralNode(req.Protocol.String(), zeroPos),
		"headers":  headersToNode(req.Headers),
	}
	return ast.NewObjectNode(props, zeroPos)
}

// NodeToRequest converts an AST ObjectNode back to a streamparser.Request.
// The Method and Protocol fields are resolved back to their enum values by
// token; an unrecognized token round-trips as the Unknown member of its
// enum rather than failing the conversion, since the node may have been
// built by hand rather than produced by RequestToNode.
func NodeToRequest(node ast.SchemaNode) (*streamparser.Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	req := &streamparser.Request{}

	if v, ok := props["method"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			if s, ok := lit.Value().(string); ok {
				req.Method = methodFromString(s)
			}
		}
	}
	if v, ok := props["url"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			if s, ok := lit.Value().(string); ok {
				req.URL = []byte(s)
			}
		}
	}
	if v, ok := props["protocol"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			if s, ok := lit.Value().(string); ok {
				req.Protocol = protocolFromString(s)
			}
		}
	}
	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		req.Headers = hdrs
	}

	return req, nil
}

func headersToNode(headers []streamparser.Header) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Key, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

func nodeToHeaders(node ast.SchemaNode) ([]streamparser.Header, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make([]streamparser.Header, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		var h streamparser.Header
		if v, ok := props["key"]; ok {
			if lit, ok := v.(*ast.LiteralNode); ok {
				h.Key, _ = lit.Value().(string)
			}
		}
		if v, ok := props["value"]; ok {
			if lit, ok := v.(*ast.LiteralNode); ok {
				h.Value, _ = lit.Value().(string)
			}
		}
		headers = append(headers, h)
	}

	return headers, nil
}

func methodFromString(s string) streamparser.Method {
	switch s {
	case "OPTIONS":
		return streamparser.MethodOptions
	case "GET":
		return streamparser.MethodGet
	case "POST":
		return streamparser.MethodPost
	case "PUT":
		return streamparser.MethodPut
	case "DELETE":
		return streamparser.MethodDelete
	case "HEAD":
		return streamparser.MethodHead
	case "TRACE":
		return streamparser.MethodTrace
	case "CONNECT":
		return streamparser.MethodConnect
	case "PATCH":
		return streamparser.MethodPatch
	default:
		return streamparser.MethodUnknown
	}
}

func protocolFromString(s string) streamparser.Protocol {
	switch s {
	case "HTTP/1.0":
		return streamparser.ProtocolHTTP10
	case "HTTP/1.1":
		return streamparser.ProtocolHTTP11
	default:
		return streamparser.ProtocolUnknown
	}
}
