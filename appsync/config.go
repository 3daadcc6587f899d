package appsync

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

var (
	sdkOnce  sync.Once
	sdkCfg   aws.Config
	sdkReady atomic.Bool
)

// InitConfig loads the shared AWS SDK configuration from the
// environment exactly once. Subsequent calls are no-ops and return the
// first outcome's error state.
func InitConfig(ctx context.Context) error {
	var err error
	sdkOnce.Do(func() {
		sdkCfg, err = config.LoadDefaultConfig(ctx)
		if err == nil {
			sdkReady.Store(true)
		}
	})
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}
	if !sdkReady.Load() {
		return fmt.Errorf("load AWS config: previous initialization failed")
	}
	return nil
}

// Config returns the shared AWS SDK configuration. It panics when
// InitConfig has not successfully run; generated runtimes call
// InitConfig during startup before any client accessor can observe it.
func Config() aws.Config {
	if !sdkReady.Load() {
		panic("appsync: AWS SDK config not initialized, call InitConfig first")
	}
	return sdkCfg
}

// Client builds a lazily-initialized singleton accessor for an AWS
// service client. The constructor runs at most once, on first call,
// against the shared configuration; every call returns the same
// client value.
func Client[T any](construct func(aws.Config) T) func() T {
	var once sync.Once
	var client T
	return func() T {
		once.Do(func() { client = construct(Config()) })
		return client
	}
}
