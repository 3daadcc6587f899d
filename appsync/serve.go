package appsync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
)

type serveOptions struct {
	batch         bool
	sdkConfig     bool
	logLevel      slog.Level
	traceEndpoint string
	traceService  string
}

// ServeOption customizes the runtime loop.
type ServeOption func(*serveOptions)

// WithBatch makes the handler expect an array of events per
// invocation, for resolvers configured with batching enabled.
func WithBatch(enabled bool) ServeOption {
	return func(o *serveOptions) { o.batch = enabled }
}

// WithSDKConfig loads the shared AWS SDK configuration before the
// runtime loop starts. Required when client accessors are in use.
func WithSDKConfig() ServeOption {
	return func(o *serveOptions) { o.sdkConfig = true }
}

// WithLogLevel sets the minimum level of the installed slog handler.
func WithLogLevel(level slog.Level) ServeOption {
	return func(o *serveOptions) { o.logLevel = level }
}

// WithTracing enables OTLP trace export to the given endpoint. An
// empty endpoint leaves tracing off.
func WithTracing(endpoint, service string) ServeOption {
	return func(o *serveOptions) {
		o.traceEndpoint = endpoint
		o.traceService = service
	}
}

// Serve installs structured logging, optionally initializes tracing
// and the shared SDK configuration, and runs the Lambda runtime loop
// dispatching payloads through the router. It only returns on setup
// failure; lambda.Start does not return.
func Serve(r *Router, opts ...ServeOption) error {
	var o serveOptions
	for _, opt := range opts {
		opt(&o)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: o.logLevel,
	})))

	shutdown, err := SetupTracing(o.traceEndpoint, o.traceService)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer shutdown(context.Background())

	if o.sdkConfig {
		if err := InitConfig(context.Background()); err != nil {
			return err
		}
	}

	lambda.Start(func(ctx context.Context, payload json.RawMessage) (any, error) {
		slog.DebugContext(ctx, "received event payload", "payload", string(payload))
		if o.batch {
			var events []*Event
			if err := json.Unmarshal(payload, &events); err != nil {
				return nil, fmt.Errorf("decode event batch: %w", err)
			}
			return r.HandleBatch(ctx, events)
		}
		event := &Event{}
		if err := json.Unmarshal(payload, event); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		return r.Handle(ctx, event), nil
	})
	return nil
}
