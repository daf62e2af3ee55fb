// Package testing provides test utilities for the santa library.
//
// This package offers deterministic randomness, recording tracers, test
// loggers and an embedded NATS server for publisher tests. It follows Go's
// convention of providing testing utilities in a dedicated package (similar
// to net/http/httptest).
//
// Key utilities:
//   - NewScriptedRandom: Random source replaying scripted picks and shuffles
//   - NewSeededRandom: Reproducible PCG-backed random source
//   - NewRecorder: Tracer that records every draw decision
//   - NewTestLogger: Logger writing through t.Logf
//   - StartEmbeddedNATS: Single NATS server with JetStream
//
// Example usage:
//
//	import (
//	    "testing"
//	    santatest "github.com/arloliu/santa/testing"
//	)
//
//	func TestMyDraw(t *testing.T) {
//	    rng := santatest.NewScriptedRandom().WithPicks(0, 1, 0)
//	    // inject rng with santa.WithRandom(rng)
//	}
package testing
