package esl

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/shape-esl/internal/parser"
)

// ParseNode parses an event into an AST from a string.
//
// Returns an ast.ObjectNode:
//
//	{ "type": "event",
//	  "headers": [{"name": "Event-Name", "value": "HEARTBEAT"}, ...],
//	  "body": "..." }
//
// The "body" property is present only when the event has a body.
func ParseNode(input string) (ast.SchemaNode, error) {
	p := parser.NewParser([]byte(input))
	node, err := p.Parse()
	if err != nil {
		return nil, wrapError(err)
	}
	return node, nil
}

// ParseNodeReader reads all data from r and parses it as an event into an AST.
func ParseNodeReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	node, err := parser.NewParser(data).Parse()
	if err != nil {
		return nil, wrapError(err)
	}
	return node, nil
}
