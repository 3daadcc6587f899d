package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dfeyer/lambda-appsync/internal/directive"
	"github.com/dfeyer/lambda-appsync/internal/language"
	"github.com/dfeyer/lambda-appsync/internal/model"
)

const exampleSchema = `
type Query {
  players: [Player!]!
  player(id: ID!): Player
}

type Mutation {
  createPlayer(name: String!): Player!
}

type Subscription {
  onCreatePlayer: Player
}

type Player {
  id: ID!
  name: String!
  team: Team!
}

enum Team {
  RUST
  PYTHON
  JS
}
`

func generate(t *testing.T, directiveStr string) map[string]string {
	t.Helper()
	doc, err := language.ParseSchema("schema.graphql", exampleSchema)
	require.NoError(t, err)
	cfg, err := directive.Parse(directiveStr)
	require.NoError(t, err)
	decls := model.Build(doc, cfg)
	files, err := Generate(cfg, decls, Options{Package: "main"})
	require.NoError(t, err)

	out := map[string]string{}
	for _, f := range files {
		out[f.Name] = string(f.Source)
	}
	return out
}

func TestGenerateEmitsAllFilesByDefault(t *testing.T) {
	out := generate(t, "schema.graphql")
	require.Contains(t, out, "appsync_types.go")
	require.Contains(t, out, "appsync_operations.go")
	require.Contains(t, out, "appsync_runtime.go")
}

func TestVisibilityFlagsGateFiles(t *testing.T) {
	out := generate(t, "schema.graphql, only_appsync_types = true")
	require.Contains(t, out, "appsync_types.go")
	require.NotContains(t, out, "appsync_operations.go")
	require.NotContains(t, out, "appsync_runtime.go")

	out = generate(t, "schema.graphql, exclude_lambda_handler = true")
	require.Contains(t, out, "appsync_types.go")
	require.Contains(t, out, "appsync_operations.go")
	require.NotContains(t, out, "appsync_runtime.go")
}

func TestTypesOutput(t *testing.T) {
	out := generate(t, "schema.graphql, name_override = Team.PYTHON: Snake")
	types := out["appsync_types.go"]

	require.Contains(t, types, "type Player struct {")
	require.Contains(t, types, "`json:\"id\"`")
	require.Contains(t, types, "type Team string")
	require.Regexp(t, `TeamSnake\s+Team = "PYTHON"`, types)
	require.Regexp(t, `TeamRust\s+Team = "RUST"`, types)
}

func TestOperationsOutput(t *testing.T) {
	out := generate(t, "schema.graphql")
	ops := out["appsync_operations.go"]

	require.Contains(t, ops, "type Operation int")
	require.Contains(t, ops, "OpQueryPlayers Operation = iota")
	require.Contains(t, ops, "OpSubscriptionOnCreatePlayer")
	require.Contains(t, ops, "var router = appsync.NewRouter()")
	require.Contains(t, ops, "func RegisterQueryPlayers(fn func(ctx context.Context) ([]Player, error))")
	require.Contains(t, ops, "func RegisterMutationCreatePlayer(fn func(ctx context.Context, name string) (Player, error))")
	require.Contains(t, ops, "func RegisterSubscriptionOnCreatePlayer(fn func(ctx context.Context) (*subfilter.FilterGroup, error))")
	require.Contains(t, ops, `appsync.Arg[string](event, "name")`)
}

func TestRuntimeOutput(t *testing.T) {
	out := generate(t, "schema.graphql, hook = verifyRequest, batch = false,"+
		" dynamodb() -> github.com/aws/aws-sdk-go-v2/service/dynamodb.Client")
	rt := out["appsync_runtime.go"]

	require.Contains(t, rt, "router.SetHook(verifyRequest)")
	require.Contains(t, rt, "appsync.WithBatch(false)")
	require.Contains(t, rt, "appsync.WithSDKConfig()")
	require.Contains(t, rt, "var dynamodb = appsync.Client(func(cfg aws.Config) *dynamodbsdk.Client {")
	require.Contains(t, rt, `dynamodbsdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"`)
}

func TestRuntimeWithoutClients(t *testing.T) {
	out := generate(t, "schema.graphql")
	rt := out["appsync_runtime.go"]
	require.NotContains(t, rt, "WithSDKConfig")
	require.NotContains(t, rt, "aws-sdk-go-v2")
}

// Golden snapshot of the full default output. A missing snapshot is
// created on first run; afterwards any drift fails the test.
func TestGenerateSnapshot(t *testing.T) {
	out := generate(t, "schema.graphql, hook = verifyRequest,"+
		" dynamodb() -> github.com/aws/aws-sdk-go-v2/service/dynamodb.Client")

	for name, got := range out {
		snap := filepath.Join("testdata", "snapshot", name+".golden")
		want, err := os.ReadFile(snap)
		if os.IsNotExist(err) {
			require.NoError(t, os.MkdirAll(filepath.Dir(snap), 0o755))
			require.NoError(t, os.WriteFile(snap, []byte(got), 0o644))
			t.Logf("created snapshot %s", snap)
			continue
		}
		require.NoError(t, err)
		if diff := cmp.Diff(string(want), got); diff != "" {
			t.Errorf("%s drifted (-want +got):\n%s", name, diff)
		}
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []File{{Name: "appsync_types.go", Source: []byte("package main\n")}}
	require.NoError(t, WriteFiles(filepath.Join(dir, "out"), files))

	b, err := os.ReadFile(filepath.Join(dir, "out", "appsync_types.go"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), "package main"))
}
