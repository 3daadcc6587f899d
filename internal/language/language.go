package language

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// ParseSchema parses GraphQL SDL into a schema document. The name is
// reported back in parse error messages and positions.
func ParseSchema(name, source string) (*SchemaDocument, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// IsRootOperationType reports whether name is one of the three root
// operation type names.
func IsRootOperationType(name string) bool {
	switch name {
	case "Query", "Mutation", "Subscription":
		return true
	}
	return false
}

// Unwrap returns the innermost named type of t.
func Unwrap(t *Type) *Type {
	for t.Elem != nil {
		t = t.Elem
	}
	return t
}
