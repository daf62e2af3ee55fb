package publish

import "github.com/arloliu/santa/types"

// Option configures a KVPublisher.
type Option func(*KVPublisher)

// WithLogger sets the publisher logger.
func WithLogger(l types.Logger) Option {
	return func(p *KVPublisher) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithMetrics sets the publisher metrics collector.
//
// Parameters:
//   - m: PublisherMetrics implementation (a full MetricsCollector also works)
//
// Returns:
//   - Option: Functional option for NewKVPublisher
func WithMetrics(m types.PublisherMetrics) Option {
	return func(p *KVPublisher) {
		if m != nil {
			p.metrics = m
		}
	}
}
