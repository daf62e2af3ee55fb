package santa

// Option configures a Group with optional dependencies.
type Option func(*groupOptions)

// groupOptions holds optional Group configuration.
type groupOptions struct {
	strategy AssignmentStrategy
	random   Random
	tracer   *Tracer
	metrics  MetricsCollector
	logger   Logger
}

// WithStrategy sets a custom assignment strategy.
//
// A supplied strategy is used as-is: Config.MaxAttempts, WithTracer,
// WithLogger and WithMetrics are not applied to it, so configure the strategy
// directly. Its real retry budget is reported by ResolutionError.Attempts.
//
// Parameters:
//   - s: AssignmentStrategy implementation
//
// Returns:
//   - Option: Functional option for NewGroup
//
// Example:
//
//	draw := strategy.NewBasketDraw(strategy.WithMaxAttempts(10000))
//	group, err := santa.NewGroup(nil, santa.WithStrategy(draw))
func WithStrategy(s AssignmentStrategy) Option {
	return func(o *groupOptions) {
		o.strategy = s
	}
}

// WithRandom sets the random source used by Assign.
//
// Overrides Config.Seed and Config.SeedPhrase. Tests inject a scripted source
// here to force specific draws.
//
// Parameters:
//   - r: Random implementation (e.g. *rand.Rand from math/rand/v2)
//
// Returns:
//   - Option: Functional option for NewGroup
//
// Example:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	group, err := santa.NewGroup(nil, santa.WithRandom(rng))
func WithRandom(r Random) Option {
	return func(o *groupOptions) {
		o.random = r
	}
}

// WithTracer sets the sink receiving every draw decision.
//
// Parameters:
//   - tracer: Tracer structure with callback functions (nil callbacks are skipped)
//
// Returns:
//   - Option: Functional option for NewGroup
//
// Example:
//
//	tracer := &santa.Tracer{
//	    OnPick: func(attempt int, giver, recipient santa.Participant) {
//	        fmt.Printf("#%d %s drew a name\n", attempt, giver)
//	    },
//	}
//	group, err := santa.NewGroup(nil, santa.WithTracer(tracer))
func WithTracer(tracer *Tracer) Option {
	return func(o *groupOptions) {
		o.tracer = tracer
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewGroup
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *groupOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewGroup
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	group, err := santa.NewGroup(nil, santa.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *groupOptions) {
		o.logger = logger
	}
}
