package santa

import (
	"fmt"

	"github.com/arloliu/santa/strategy"
)

// Config is the configuration for a Group.
//
// All fields have yaml tags so the config can be embedded in larger
// application configs (see cmd/santa for an example).
type Config struct {
	// MaxAttempts is the number of basket draws tried before Assign gives up
	// with ErrResolutionFailed.
	// Recommended: 1000 (a larger budget only helps heavily constrained groups).
	MaxAttempts int `yaml:"maxAttempts"`

	// Seed fixes the random source so that the same group always resolves
	// to the same assignment.
	// Default: 0 (seeded from the runtime's random source).
	Seed uint64 `yaml:"seed"`

	// SeedPhrase derives the seed from a human-friendly phrase
	// (e.g. "office-party-2026") so a draw can be reproduced later.
	// Mutually exclusive with Seed.
	SeedPhrase string `yaml:"seedPhrase"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		MaxAttempts: strategy.DefaultMaxAttempts,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	// Note: Seed of 0 is valid (random seed), so we don't apply default
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - MaxAttempts >= 1
//   - Seed and SeedPhrase are not both set
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("%w: MaxAttempts must be >= 1, got %d", ErrInvalidConfig, cfg.MaxAttempts)
	}

	if cfg.Seed != 0 && cfg.SeedPhrase != "" {
		return fmt.Errorf("%w: Seed and SeedPhrase are mutually exclusive", ErrInvalidConfig)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for non-recommended values.
//
// This is called after Validate() in NewGroup() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.MaxAttempts < 100 {
		logger.Warn(
			"MaxAttempts is very low, constrained groups may fail to resolve",
			"maxAttempts", cfg.MaxAttempts,
			"recommended", strategy.DefaultMaxAttempts,
		)
	}
}

// TestConfig returns a configuration for deterministic tests.
//
// The seed is fixed so every Assign on an identical group yields the same
// assignment. Use DefaultConfig() for real draws.
//
// Returns:
//   - Config: Configuration with a fixed seed
//
// Example:
//
//	cfg := santa.TestConfig()
//	group, err := santa.NewGroup(&cfg)
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 20261224

	return cfg
}
