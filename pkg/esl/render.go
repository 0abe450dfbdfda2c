package esl

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (from ParseNode) back to wire format bytes.
func Render(node ast.SchemaNode) ([]byte, error) {
	ev, err := NodeToEvent(node)
	if err != nil {
		return nil, fmt.Errorf("esl: Render: %w", err)
	}
	return Marshal(ev)
}
