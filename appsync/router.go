package appsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Resolver handles one resolver invocation and produces its response.
type Resolver func(ctx context.Context, event *Event) Response

// Hook runs before dispatch. A non-nil response short-circuits the
// event: it is returned verbatim and no resolver runs.
type Hook func(ctx context.Context, event *Event) *Response

type routeKey struct {
	kind  OperationKind
	field string
}

// Router dispatches AppSync events to registered resolvers keyed by
// (operation kind, field name).
type Router struct {
	hook   Hook
	routes map[routeKey]Resolver
}

func NewRouter() *Router {
	return &Router{routes: map[routeKey]Resolver{}}
}

// SetHook installs the request hook. Passing nil removes it.
func (r *Router) SetHook(h Hook) { r.hook = h }

// Register binds a resolver to an operation. Registering the same
// operation twice is rejected.
func (r *Router) Register(kind OperationKind, field string, fn Resolver) error {
	key := routeKey{kind, field}
	if _, dup := r.routes[key]; dup {
		return fmt.Errorf("resolver already registered for %s.%s", kind, field)
	}
	r.routes[key] = fn
	return nil
}

// MustRegister is Register, panicking on a duplicate registration.
// Generated wiring uses it at package init time.
func (r *Router) MustRegister(kind OperationKind, field string, fn Resolver) {
	if err := r.Register(kind, field, fn); err != nil {
		panic(err)
	}
}

// Handle resolves a single event: hook first (a non-nil hook response
// is returned unchanged), then the registered resolver. An operation
// with no resolver yields an InvalidOperation error response.
func (r *Router) Handle(ctx context.Context, event *Event) Response {
	kind, field := event.Operation()
	ctx, span := otel.Tracer("appsync").Start(ctx, "appsync.resolve")
	span.SetAttributes(
		attribute.String("graphql.operation.type", string(kind)),
		attribute.String("graphql.field.name", field),
	)
	defer span.End()

	slog.InfoContext(ctx, "resolving operation",
		"kind", kind, "field", field, "identity", event.Identity.Kind())

	if r.hook != nil {
		if resp := r.hook(ctx, event); resp != nil {
			slog.InfoContext(ctx, "hook short-circuited operation", "kind", kind, "field", field)
			return *resp
		}
	}
	fn, ok := r.routes[routeKey{kind, field}]
	if !ok {
		return ErrorResponse(NewError("InvalidOperation", "no resolver registered for %s.%s", kind, field))
	}
	resp := fn(ctx, event)
	if err := resp.Err(); err != nil {
		slog.ErrorContext(ctx, "operation failed",
			"kind", kind, "field", field, "errorType", err.Type, "errorMessage", err.Message)
	}
	return resp
}

// HandleBatch resolves a batch of events concurrently. Responses are
// written into slots indexed by the event's position, so the returned
// slice preserves input order regardless of completion order.
// Per-event resolver errors stay inside their slot as error responses;
// an unexpected fault (a panic in any resolver) fails the whole
// invocation with no partial results.
func (r *Router) HandleBatch(ctx context.Context, events []*Event) ([]Response, error) {
	responses := make([]Response, len(events))
	faults := make([]error, len(events))

	var wg sync.WaitGroup
	for i, event := range events {
		wg.Add(1)
		go func(i int, event *Event) {
			defer wg.Done()
			defer func() {
				if p := recover(); p != nil {
					faults[i] = fmt.Errorf("resolver panic on event %d: %v\n%s", i, p, debug.Stack())
				}
			}()
			responses[i] = r.Handle(ctx, event)
		}(i, event)
	}
	wg.Wait()

	if err := errors.Join(faults...); err != nil {
		return nil, err
	}
	return responses, nil
}
