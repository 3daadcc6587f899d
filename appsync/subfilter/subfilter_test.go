package subfilter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfeyer/lambda-appsync/appsync"
)

func TestFieldPathLength(t *testing.T) {
	_, err := NewFieldPath(strings.Repeat("a", 256))
	require.NoError(t, err)

	_, err = NewFieldPath(strings.Repeat("a", 257))
	require.Error(t, err)
	require.Contains(t, err.Error(), "256")

	require.Panics(t, func() { MustFieldPath(strings.Repeat("a", 257)) })
}

func TestWireShape(t *testing.T) {
	group := Or(
		And(
			Eq(MustFieldPath("player.team"), "PYTHON"),
			Gt(MustFieldPath("score"), 10),
		),
		And(Eq(MustFieldPath("public"), true)),
	)
	require.NoError(t, group.Err())

	b, err := json.Marshal(group)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"filterGroup": [
			{"filters": [
				{"fieldName": "player.team", "operator": "eq", "value": "PYTHON"},
				{"fieldName": "score", "operator": "gt", "value": 10}
			]},
			{"filters": [
				{"fieldName": "public", "operator": "eq", "value": true}
			]}
		]
	}`, string(b))
}

func TestScalarTypesAdmitted(t *testing.T) {
	// String-backed and int64-backed scalars satisfy the value
	// constraints directly.
	group := Single(Eq(MustFieldPath("id"), appsync.ID("p1")))
	require.NoError(t, group.Err())

	group = Single(Ge(MustFieldPath("createdAt"), appsync.AWSTimestamp(1700000000)))
	require.NoError(t, group.Err())
}

func TestBetweenWire(t *testing.T) {
	b, err := json.Marshal(Single(Between(MustFieldPath("score"), 5, 10)))
	require.NoError(t, err)
	require.JSONEq(t, `{"filterGroup":[{"filters":[
		{"fieldName":"score","operator":"between","value":[5,10]}
	]}]}`, string(b))
}

func TestInBound(t *testing.T) {
	ok := In(MustFieldPath("team"), "A", "B", "C", "D", "E")
	require.NoError(t, ok.Err())

	over := In(MustFieldPath("team"), "A", "B", "C", "D", "E", "F")
	require.Error(t, over.Err())
	require.Contains(t, over.Err().Error(), "at most 5")

	_, err := json.Marshal(Single(over))
	require.Error(t, err)
}

func TestContainsAnyBound(t *testing.T) {
	values := make([]int, 21)
	over := ContainsAny(MustFieldPath("tags"), values...)
	require.Error(t, over.Err())
	require.Contains(t, over.Err().Error(), "at most 20")
}

func TestAndBound(t *testing.T) {
	ff := Eq(MustFieldPath("x"), 1)
	require.NoError(t, And(ff, ff, ff, ff, ff).Err())
	require.Error(t, And(ff, ff, ff, ff, ff, ff).Err())
}

func TestOrBound(t *testing.T) {
	f := And(Eq(MustFieldPath("x"), 1))
	filters := make([]Filter, 11)
	for i := range filters {
		filters[i] = f
	}
	require.Error(t, Or(filters...).Err())
	require.NoError(t, Or(filters[:10]...).Err())
}

func TestDeferredErrorSurfacesAtMarshal(t *testing.T) {
	group := Single(In(MustFieldPath("team"), "A", "B", "C", "D", "E", "F"))
	require.Error(t, group.Err())
	_, err := json.Marshal(group)
	require.Error(t, err)
	require.Contains(t, err.Error(), "at most 5")
}
