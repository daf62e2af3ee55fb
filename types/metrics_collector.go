package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called concurrently when a group is shared between goroutines.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	ResolverMetrics
	PublisherMetrics
}

// ResolverMetrics defines metrics for assignment resolution.
type ResolverMetrics interface {
	// RecordAttempt records the outcome of a single draw attempt.
	//
	// Parameters:
	//   - success: true if the attempt produced a complete assignment
	RecordAttempt(success bool)

	// RecordResolution records the outcome of a whole Assign call.
	//
	// Parameters:
	//   - result: "success", "exhausted", or "rejected" (invalid input)
	//   - attempts: Number of attempts used
	//   - duration: Time taken in seconds
	RecordResolution(result string, attempts int, duration float64)
}

// PublisherMetrics defines metrics for assignment publishing.
type PublisherMetrics interface {
	// RecordPublishOperation records a publisher operation outcome.
	//
	// Parameters:
	//   - operation: Operation type ("publish", "lookup", "clear")
	//   - success: true if the operation succeeded
	RecordPublishOperation(operation string, success bool)

	// RecordKVOperationDuration records NATS KV operation latency.
	//
	// Parameters:
	//   - operation: Operation type ("put", "get", "keys", "delete_bucket")
	//   - duration: Time taken in seconds
	RecordKVOperationDuration(operation string, duration float64)
}
