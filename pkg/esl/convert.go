package esl

import (
	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-esl/internal/parser"
)

// EventToNode converts an event to an AST ObjectNode.
func EventToNode(ev *Event) ast.SchemaNode {
	return parser.EventToNode(toInternal(ev))
}

// NodeToEvent converts an AST ObjectNode to an event.
func NodeToEvent(node ast.SchemaNode) (*Event, error) {
	fe, err := parser.NodeToEvent(node)
	if err != nil {
		return nil, err
	}
	headers := make(Headers, len(fe.Headers))
	for i, h := range fe.Headers {
		headers[i] = Header{Name: h.Name, Value: h.Value}
	}
	var body []byte
	if fe.HasBody {
		body = fe.Body
		if body == nil {
			body = []byte{}
		}
	}
	return NewEvent(headers, body), nil
}

// NodeToInterface converts an AST node to native Go types.
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
