package appsync

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupTracingNoEndpoint(t *testing.T) {
	shutdown, err := SetupTracing("", "players-api")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}
