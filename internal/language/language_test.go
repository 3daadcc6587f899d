package language

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSchema(t *testing.T) {
	doc, err := ParseSchema("schema.graphql", "type Query { ping: String! }")
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 1)
	require.Equal(t, "Query", doc.Definitions[0].Name)
}

func TestParseSchemaError(t *testing.T) {
	_, err := ParseSchema("schema.graphql", "type Query {{{")
	require.Error(t, err)
	require.Contains(t, err.Error(), "schema.graphql")
}

func TestUnwrap(t *testing.T) {
	doc, err := ParseSchema("schema.graphql", "type Query { ids: [[ID!]!]! }")
	require.NoError(t, err)
	inner := Unwrap(doc.Definitions[0].Fields[0].Type)
	require.Equal(t, "ID", inner.NamedType)
}

func TestIsRootOperationType(t *testing.T) {
	require.True(t, IsRootOperationType("Query"))
	require.True(t, IsRootOperationType("Subscription"))
	require.False(t, IsRootOperationType("Player"))
}
