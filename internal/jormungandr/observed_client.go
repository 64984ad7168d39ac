package jormungandr

import (
	"context"
	"time"

	"github.com/goodnatureofminers/lostblocks/internal/lostblocks/model"
)

// ObservedClient wraps a NodeAPI with metrics instrumentation.
type ObservedClient struct {
	client     NodeAPI
	apiMetrics APIMetrics
}

// NewObservedClient constructs an instrumented node API client.
func NewObservedClient(client NodeAPI, apiMetrics APIMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		apiMetrics: apiMetrics,
	}
}

// Tip returns the current chain head identifier.
func (o *ObservedClient) Tip(ctx context.Context) (id model.BlockID, err error) {
	started := time.Now()
	defer func() {
		o.apiMetrics.Observe("tip", err, started)
	}()
	return o.client.Tip(ctx)
}

// Block returns the raw block for an identifier.
func (o *ObservedClient) Block(ctx context.Context, id model.BlockID) (raw []byte, err error) {
	started := time.Now()
	defer func() {
		o.apiMetrics.Observe("block", err, started)
	}()
	return o.client.Block(ctx, id)
}

// LeaderLogs returns the node's leadership log.
func (o *ObservedClient) LeaderLogs(ctx context.Context) (slots []model.ScheduledSlot, err error) {
	started := time.Now()
	defer func() {
		o.apiMetrics.Observe("leaders_logs", err, started)
	}()
	return o.client.LeaderLogs(ctx)
}
