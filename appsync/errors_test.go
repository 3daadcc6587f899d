package appsync

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/require"
)

func TestErrorOrCombinesTypesAndMessages(t *testing.T) {
	a := NewError("Unauthorized", "token expired")
	b := NewError("DynamoDB", "conditional check failed")

	got := a.Or(b)
	require.Equal(t, "Unauthorized|DynamoDB", got.Type)
	require.Equal(t, "token expired\nconditional check failed", got.Message)

	require.Same(t, a, a.Or(nil))
	require.Same(t, b, (*Error)(nil).Or(b))
}

func TestErrorFromPassesThroughEnvelope(t *testing.T) {
	orig := NewError("InvalidArgs", "nope")
	require.Same(t, orig, ErrorFrom(orig))
	require.Same(t, orig, ErrorFrom(fmt.Errorf("wrapped: %w", orig)))
}

func TestErrorFromSmithyMetadata(t *testing.T) {
	err := &smithy.GenericAPIError{Code: "ConditionalCheckFailedException", Message: "The conditional request failed"}
	got := ErrorFrom(fmt.Errorf("scan: %w", err))
	require.Equal(t, "ConditionalCheckFailedException", got.Type)
	require.Equal(t, "The conditional request failed", got.Message)
}

func TestErrorFromSmithyDefaults(t *testing.T) {
	got := ErrorFrom(&smithy.GenericAPIError{})
	require.Equal(t, "Unknown", got.Type)
	require.Equal(t, "", got.Message)
}

func TestErrorFromPlainError(t *testing.T) {
	got := ErrorFrom(errors.New("boom"))
	require.Equal(t, "Unknown", got.Type)
	require.Equal(t, "boom", got.Message)
}
