package appsync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseMarshalData(t *testing.T) {
	b, err := json.Marshal(DataResponse(map[string]any{"id": "p1"}))
	require.NoError(t, err)
	require.JSONEq(t, `{"data":{"id":"p1"}}`, string(b))
}

func TestResponseMarshalNilData(t *testing.T) {
	b, err := json.Marshal(DataResponse(nil))
	require.NoError(t, err)
	require.JSONEq(t, `{"data":null}`, string(b))
}

func TestResponseMarshalError(t *testing.T) {
	b, err := json.Marshal(ErrorResponse(NewError("DynamoDB", "not found")))
	require.NoError(t, err)
	require.JSONEq(t, `{"errorType":"DynamoDB","errorMessage":"not found"}`, string(b))
}

func TestUnauthorizedResponse(t *testing.T) {
	b, err := json.Marshal(Unauthorized())
	require.NoError(t, err)
	require.JSONEq(t,
		`{"errorType":"Unauthorized","errorMessage":"This operation cannot be authorized"}`,
		string(b))
}
