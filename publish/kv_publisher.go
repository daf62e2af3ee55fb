package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/santa/internal/hash"
	"github.com/arloliu/santa/internal/kvutil"
	"github.com/arloliu/santa/internal/logger"
	"github.com/arloliu/santa/internal/metrics"
	"github.com/arloliu/santa/internal/natsutil"
	"github.com/arloliu/santa/types"
)

// Operation names reported to PublisherMetrics.
const (
	OpPublish = "publish"
	OpLookup  = "lookup"
	OpGivers  = "givers"
	OpClear   = "clear"
)

// KVPublisher publishes assignments to NATS JetStream KV, one bucket per draw.
//
// KVPublisher is safe for concurrent use. Bucket handles are cached per draw;
// Clear forgets the cached handle.
type KVPublisher struct {
	js      jetstream.JetStream
	cfg     Config
	logger  types.Logger
	metrics types.PublisherMetrics
	buckets *xsync.Map[string, jetstream.KeyValue]
	now     func() time.Time
}

// NewKVPublisher creates a new publisher.
//
// Parameters:
//   - js: JetStream context
//   - cfg: Publisher configuration (zero fields get defaults)
//   - opts: Optional logger and metrics
//
// Returns:
//   - *KVPublisher: Initialized publisher
//   - error: ErrInvalidConfig for an invalid configuration
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	pub, err := publish.NewKVPublisher(js, publish.Config{TTL: 30 * 24 * time.Hour})
func NewKVPublisher(js jetstream.JetStream, cfg Config, opts ...Option) (*KVPublisher, error) {
	if js == nil {
		return nil, fmt.Errorf("%w: JetStream context is required", types.ErrInvalidConfig)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &KVPublisher{
		js:      js,
		cfg:     cfg,
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
		buckets: xsync.NewMap[string, jetstream.KeyValue](),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Config returns the effective configuration.
func (p *KVPublisher) Config() Config {
	return p.cfg
}

// Publish writes one record per giver plus the draw metadata.
//
// Republishing a draw overwrites existing records and removes records of
// givers that are not part of the new assignment.
//
// Parameters:
//   - ctx: Context for cancellation
//   - drawID: Draw name, must match [A-Za-z0-9_-]+
//   - assignment: Resolved assignment
//
// Returns:
//   - error: ErrInvalidDrawID, or an error wrapping ErrPublishFailed
//     (and ErrInvalidAssignment for an empty or malformed assignment,
//     ErrConnectivity for transport failures)
func (p *KVPublisher) Publish(ctx context.Context, drawID string, assignment types.Assignment) (err error) {
	defer func() { p.metrics.RecordPublishOperation(OpPublish, err == nil) }()

	bucket, err := p.cfg.bucketName(drawID)
	if err != nil {
		return err
	}

	if err := assignment.Validate(); err != nil {
		return fmt.Errorf("%w: draw %q: %w", types.ErrPublishFailed, drawID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.OperationTimeout)
	defer cancel()

	kv, err := p.ensureBucket(ctx, bucket)
	if err != nil {
		return p.publishErr("ensure bucket", err)
	}

	publishedAt := p.now().UTC()
	active := make(map[string]struct{}, len(assignment.Pairs))

	for _, pair := range assignment.Pairs {
		data, err := json.Marshal(Record{
			DrawID:      drawID,
			Giver:       pair.Giver,
			Recipient:   pair.Recipient,
			PublishedAt: publishedAt,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to marshal record: %w", types.ErrPublishFailed, err)
		}

		key := giverKey(pair.Giver)
		active[key] = struct{}{}
		if err := p.put(ctx, kv, key, data); err != nil {
			return p.publishErr("put record", err)
		}
	}

	if err := p.cleanupStale(ctx, kv, active); err != nil {
		// Best-effort: stale records of departed givers are harmless for lookups by current givers.
		p.logger.Warn("stale record cleanup failed", "draw_id", drawID, "error", err)
	}

	meta, err := json.Marshal(Meta{
		DrawID:       drawID,
		Participants: assignment.Len(),
		Attempt:      assignment.Attempt,
		Fingerprint:  strconv.FormatUint(hash.Fingerprint(assignment), 16),
		PublishedAt:  publishedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal meta: %w", types.ErrPublishFailed, err)
	}
	if err := p.put(ctx, kv, metaKey, meta); err != nil {
		return p.publishErr("put meta", err)
	}

	p.logger.Info("assignment published", "draw_id", drawID, "bucket", bucket, "givers", assignment.Len())

	return nil
}

// Lookup returns the record of one giver.
//
// Parameters:
//   - ctx: Context for cancellation
//   - drawID: Draw name
//   - giver: Participant looking up their recipient
//
// Returns:
//   - Record: The giver's record
//   - error: ErrInvalidDrawID, ErrRecordNotFound (unknown draw or giver), or a KV error
func (p *KVPublisher) Lookup(ctx context.Context, drawID string, giver types.Participant) (rec Record, err error) {
	defer func() { p.metrics.RecordPublishOperation(OpLookup, err == nil) }()

	data, err := p.get(ctx, drawID, giverKey(giver))
	if err != nil {
		return Record{}, err
	}

	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return rec, nil
}

// Meta returns the metadata of a published draw.
//
// Returns:
//   - Meta: Draw metadata
//   - error: ErrInvalidDrawID, ErrRecordNotFound if the draw was never published, or a KV error
func (p *KVPublisher) Meta(ctx context.Context, drawID string) (Meta, error) {
	data, err := p.get(ctx, drawID, metaKey)
	if err != nil {
		return Meta{}, err
	}

	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		return Meta{}, fmt.Errorf("failed to unmarshal meta: %w", err)
	}

	return meta, nil
}

// Givers returns the givers of a published draw, sorted.
//
// Returns:
//   - []types.Participant: Sorted givers (empty for an empty bucket)
//   - error: ErrInvalidDrawID, ErrRecordNotFound for an unknown draw, or a KV error
func (p *KVPublisher) Givers(ctx context.Context, drawID string) (givers []types.Participant, err error) {
	defer func() { p.metrics.RecordPublishOperation(OpGivers, err == nil) }()

	bucket, err := p.cfg.bucketName(drawID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.OperationTimeout)
	defer cancel()

	kv, err := p.openBucket(ctx, bucket)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	keys, err := kvutil.Keys(ctx, kv)
	p.metrics.RecordKVOperationDuration("keys", time.Since(start).Seconds())
	if err != nil {
		return nil, natsutil.MarkConnectivity(err)
	}

	for _, key := range keys {
		if key == metaKey {
			continue
		}
		giver, err := parseGiverKey(key)
		if err != nil {
			p.logger.Debug("skipping foreign key", "bucket", bucket, "key", key)
			continue
		}
		givers = append(givers, giver)
	}
	slices.Sort(givers)

	return givers, nil
}

// Clear deletes a draw bucket with all of its records.
//
// Clearing an unknown draw is not an error.
func (p *KVPublisher) Clear(ctx context.Context, drawID string) (err error) {
	defer func() { p.metrics.RecordPublishOperation(OpClear, err == nil) }()

	bucket, err := p.cfg.bucketName(drawID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.OperationTimeout)
	defer cancel()

	p.buckets.Delete(bucket)

	start := time.Now()
	err = kvutil.Delete(ctx, p.js, bucket)
	p.metrics.RecordKVOperationDuration("delete_bucket", time.Since(start).Seconds())
	if err != nil {
		return natsutil.MarkConnectivity(err)
	}

	p.logger.Info("draw cleared", "draw_id", drawID, "bucket", bucket)

	return nil
}

func (p *KVPublisher) ensureBucket(ctx context.Context, bucket string) (jetstream.KeyValue, error) {
	if kv, ok := p.buckets.Load(bucket); ok {
		return kv, nil
	}

	kv, err := kvutil.EnsureBucket(ctx, p.js, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "santa draw " + bucket,
		History:     1,
		TTL:         p.cfg.TTL,
	}, p.cfg.MaxRetries)
	if err != nil {
		return nil, err
	}

	p.buckets.Store(bucket, kv)
	p.logger.Debug("draw bucket ready", "bucket", bucket)

	return kv, nil
}

// openBucket opens an existing draw bucket, mapping a missing bucket to ErrRecordNotFound.
func (p *KVPublisher) openBucket(ctx context.Context, bucket string) (jetstream.KeyValue, error) {
	if kv, ok := p.buckets.Load(bucket); ok {
		return kv, nil
	}

	kv, err := kvutil.Open(ctx, p.js, bucket)
	if err != nil {
		if errors.Is(err, kvutil.ErrBucketNotFound) {
			return nil, fmt.Errorf("%w: bucket %s", types.ErrRecordNotFound, bucket)
		}

		return nil, natsutil.MarkConnectivity(err)
	}

	p.buckets.Store(bucket, kv)

	return kv, nil
}

func (p *KVPublisher) get(ctx context.Context, drawID, key string) ([]byte, error) {
	bucket, err := p.cfg.bucketName(drawID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.OperationTimeout)
	defer cancel()

	kv, err := p.openBucket(ctx, bucket)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	entry, err := kv.Get(ctx, key)
	p.metrics.RecordKVOperationDuration("get", time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: key %s in bucket %s", types.ErrRecordNotFound, key, bucket)
		}
		if errors.Is(err, jetstream.ErrBucketNotFound) {
			p.buckets.Delete(bucket)
			return nil, fmt.Errorf("%w: bucket %s", types.ErrRecordNotFound, bucket)
		}

		return nil, natsutil.MarkConnectivity(err)
	}

	return entry.Value(), nil
}

func (p *KVPublisher) put(ctx context.Context, kv jetstream.KeyValue, key string, data []byte) error {
	start := time.Now()
	_, err := kv.Put(ctx, key, data)
	p.metrics.RecordKVOperationDuration("put", time.Since(start).Seconds())

	return err
}

// cleanupStale removes giver records that are not in the active set.
func (p *KVPublisher) cleanupStale(ctx context.Context, kv jetstream.KeyValue, active map[string]struct{}) error {
	keys, err := kvutil.Keys(ctx, kv)
	if err != nil {
		return err
	}

	deleted := 0
	for _, key := range keys {
		if key == metaKey {
			continue
		}
		if _, ok := active[key]; ok {
			continue
		}
		if err := kv.Delete(ctx, key); err != nil {
			p.logger.Warn("failed to delete stale record", "key", key, "error", err)
			continue
		}
		deleted++
	}

	if deleted > 0 {
		p.logger.Debug("removed stale records", "bucket", kv.Bucket(), "deleted_count", deleted)
	}

	return nil
}

func (p *KVPublisher) publishErr(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", types.ErrPublishFailed, step, natsutil.MarkConnectivity(err))
}
