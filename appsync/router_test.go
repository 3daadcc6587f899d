package appsync

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/require"
)

func queryEvent(field string) *Event {
	return &Event{Info: EventInfo{ParentTypeName: "Query", FieldName: field}}
}

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	r.MustRegister(Query, "players", func(ctx context.Context, ev *Event) Response {
		return DataResponse([]string{"p1", "p2"})
	})

	resp := r.Handle(context.Background(), queryEvent("players"))
	require.Nil(t, resp.Err())
	require.Equal(t, []string{"p1", "p2"}, resp.Data())
}

func TestRouterDuplicateRegistration(t *testing.T) {
	r := NewRouter()
	fn := func(ctx context.Context, ev *Event) Response { return DataResponse(nil) }
	require.NoError(t, r.Register(Query, "players", fn))
	require.Error(t, r.Register(Query, "players", fn))
}

func TestRouterUnknownOperation(t *testing.T) {
	r := NewRouter()
	resp := r.Handle(context.Background(), queryEvent("nope"))
	require.NotNil(t, resp.Err())
	require.Equal(t, "InvalidOperation", resp.Err().Type)
}

func TestRouterHookShortCircuit(t *testing.T) {
	var resolved atomic.Bool
	r := NewRouter()
	r.MustRegister(Query, "players", func(ctx context.Context, ev *Event) Response {
		resolved.Store(true)
		return DataResponse(nil)
	})
	r.SetHook(func(ctx context.Context, ev *Event) *Response {
		resp := Unauthorized()
		return &resp
	})

	resp := r.Handle(context.Background(), queryEvent("players"))
	require.NotNil(t, resp.Err())
	require.Equal(t, "Unauthorized", resp.Err().Type)
	require.False(t, resolved.Load(), "resolver must not run after hook short-circuit")
}

func TestRouterHookPassThrough(t *testing.T) {
	r := NewRouter()
	r.MustRegister(Query, "players", func(ctx context.Context, ev *Event) Response {
		return DataResponse("ok")
	})
	r.SetHook(func(ctx context.Context, ev *Event) *Response { return nil })

	resp := r.Handle(context.Background(), queryEvent("players"))
	require.Nil(t, resp.Err())
	require.Equal(t, "ok", resp.Data())
}

func TestHandleBatchPreservesOrder(t *testing.T) {
	r := NewRouter()
	r.MustRegister(Query, "player", func(ctx context.Context, ev *Event) Response {
		id, aerr := Arg[ID](ev, "id")
		if aerr != nil {
			return ErrorResponse(aerr)
		}
		if id == "missing" {
			return ErrorResponse(NewError("NotFound", "no player %s", id))
		}
		return DataResponse(id)
	})

	events := []*Event{
		{Info: EventInfo{ParentTypeName: "Query", FieldName: "player"}, Arguments: json.RawMessage(`{"id":"missing"}`)},
		{Info: EventInfo{ParentTypeName: "Query", FieldName: "player"}, Arguments: json.RawMessage(`{"id":"p2"}`)},
		{Info: EventInfo{ParentTypeName: "Query", FieldName: "player"}, Arguments: json.RawMessage(`{}`)},
	}

	responses, err := r.HandleBatch(context.Background(), events)
	require.NoError(t, err)
	require.Len(t, responses, 3)
	require.Equal(t, "NotFound", responses[0].Err().Type)
	require.Nil(t, responses[1].Err())
	require.Equal(t, ID("p2"), responses[1].Data())
	require.Equal(t, "InvalidArgs", responses[2].Err().Type)
}

func TestHandleBatchFaultIsFatal(t *testing.T) {
	r := NewRouter()
	r.MustRegister(Query, "boom", func(ctx context.Context, ev *Event) Response {
		panic("resolver bug")
	})
	r.MustRegister(Query, "fine", func(ctx context.Context, ev *Event) Response {
		return DataResponse("ok")
	})

	responses, err := r.HandleBatch(context.Background(), []*Event{
		queryEvent("fine"),
		queryEvent("boom"),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "resolver panic on event 1")
	require.Nil(t, responses, "a fault must not surface partial results")
}

func TestClientSingleton(t *testing.T) {
	sdkReady.Store(true)
	t.Cleanup(func() { sdkReady.Store(false) })

	var constructed atomic.Int32
	type fakeClient struct{ region string }
	accessor := Client(func(cfg aws.Config) *fakeClient {
		constructed.Add(1)
		return &fakeClient{region: cfg.Region}
	})

	first := accessor()
	second := accessor()
	require.Same(t, first, second)
	require.Equal(t, int32(1), constructed.Load())
}
