package publish

import (
	"fmt"
	"regexp"
	"time"

	"github.com/arloliu/santa/types"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Config configures a KVPublisher.
type Config struct {
	// BucketPrefix is prepended to the draw ID to form the bucket name.
	// Must match [A-Za-z0-9_-]+.
	BucketPrefix string `yaml:"bucketPrefix"`

	// TTL is how long published records remain in KV (0 = no expiration).
	TTL time.Duration `yaml:"ttl"`

	// OperationTimeout bounds every KV call.
	// Recommended: 5 seconds.
	OperationTimeout time.Duration `yaml:"operationTimeout"`

	// MaxRetries is the number of attempts used to create a draw bucket.
	MaxRetries int `yaml:"maxRetries"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		BucketPrefix:     "santa-draw",
		TTL:              0, // No TTL - records stay until Clear
		OperationTimeout: 5 * time.Second,
		MaxRetries:       3,
	}
}

// applyDefaults fills in missing configuration values.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.BucketPrefix == "" {
		c.BucketPrefix = defaults.BucketPrefix
	}
	if c.OperationTimeout <= 0 {
		c.OperationTimeout = defaults.OperationTimeout
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = defaults.MaxRetries
	}
	// Note: TTL of 0 is valid (no expiration), so we don't apply default
}

// Validate checks configuration constraints.
//
// Returns:
//   - error: Error wrapping types.ErrInvalidConfig, nil if valid
func (c *Config) Validate() error {
	if !namePattern.MatchString(c.BucketPrefix) {
		return fmt.Errorf("%w: BucketPrefix %q must match %s", types.ErrInvalidConfig, c.BucketPrefix, namePattern)
	}
	if c.TTL < 0 {
		return fmt.Errorf("%w: TTL must be >= 0, got %v", types.ErrInvalidConfig, c.TTL)
	}

	return nil
}

// bucketName returns the bucket of a draw.
func (c *Config) bucketName(drawID string) (string, error) {
	if !namePattern.MatchString(drawID) {
		return "", fmt.Errorf("%w: %q must match %s", types.ErrInvalidDrawID, drawID, namePattern)
	}

	return c.BucketPrefix + "-" + drawID, nil
}
