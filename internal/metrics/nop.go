// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/arloliu/santa/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default collector of a Group and of
// the publisher.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	group, _ := santa.NewGroup(nil, santa.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// ResolverMetrics implementation

// RecordAttempt discards the attempt outcome.
func (n *NopMetrics) RecordAttempt(_ /* success */ bool) {
	// No-op
}

// RecordResolution discards the resolution outcome.
func (n *NopMetrics) RecordResolution(_ /* result */ string, _ /* attempts */ int, _ /* duration */ float64) {
	// No-op
}

// PublisherMetrics implementation

// RecordPublishOperation discards the publisher operation outcome.
func (n *NopMetrics) RecordPublishOperation(_ /* operation */ string, _ /* success */ bool) {
	// No-op
}

// RecordKVOperationDuration discards the KV operation duration metric.
func (n *NopMetrics) RecordKVOperationDuration(_ /* operation */ string, _ /* duration */ float64) {
	// No-op
}
