// Package parser implements an AST parser for events.
// It produces shape-core AST nodes (ObjectNode, LiteralNode, ArrayDataNode)
// from event wire-format input.
//
// An event is mapped to an ObjectNode with the following structure:
//
//	{ "type": "event",
//	  "headers": [{"name": "Event-Name", "value": "HEARTBEAT"}, ...],
//	  "body": "..." }
//
// The "body" property exists only when the event carries a body. Header
// elements keep the order of first appearance.
package parser

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-esl/internal/fastparser"
)

// NodeType is the value of the "type" property of an event node.
const NodeType = "event"

var zeroPos = ast.Position{}

// Parser produces AST nodes from event wire-format data.
type Parser struct {
	data []byte
}

// NewParser creates a new AST parser for the given input.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse decodes the event and returns an AST ObjectNode.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	ev, err := fastparser.NewParser(p.data).Parse()
	if err != nil {
		return nil, err
	}
	return EventToNode(ev), nil
}

// EventToNode maps a decoded event to its AST form.
func EventToNode(ev *fastparser.Event) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode(NodeType, zeroPos),
		"headers": headersToNode(ev.Headers),
	}
	if ev.HasBody {
		props["body"] = ast.NewLiteralNode(string(ev.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers []fastparser.Header) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"name":  ast.NewLiteralNode(h.Name, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToEvent converts an AST ObjectNode back to a fastparser.Event.
// A "type" property other than "event" is rejected; a missing one is accepted.
func NodeToEvent(node ast.SchemaNode) (*fastparser.Event, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	ev := &fastparser.Event{}

	if v, ok := props["type"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			if s, _ := lit.Value().(string); s != NodeType {
				return nil, fmt.Errorf("unexpected node type %q", s)
			}
		}
	}
	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		ev.Headers = hdrs
	}
	if v, ok := props["body"]; ok {
		lit, ok := v.(*ast.LiteralNode)
		if !ok {
			return nil, fmt.Errorf("expected LiteralNode for body, got %T", v)
		}
		switch b := lit.Value().(type) {
		case string:
			ev.Body = []byte(b)
		case []byte:
			ev.Body = append([]byte(nil), b...)
		default:
			return nil, fmt.Errorf("unsupported body value %T", b)
		}
		ev.HasBody = true
	}

	return ev, nil
}

func nodeToHeaders(node ast.SchemaNode) ([]fastparser.Header, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make([]fastparser.Header, 0, len(elements))
	for i, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			return nil, fmt.Errorf("header %d: expected ObjectNode, got %T", i, elem)
		}
		props := obj.Properties()
		var h fastparser.Header
		if v, ok := props["name"]; ok {
			if lit, ok := v.(*ast.LiteralNode); ok {
				h.Name, _ = lit.Value().(string)
			}
		}
		if h.Name == "" {
			return nil, fmt.Errorf("header %d: missing name", i)
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
