package hammingindex

import "log/slog"

type options struct {
	bucketPageSize  uint32
	hashTableSize   uint32
	blobPageSize    uint32
	bruteForceBound float32
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures MultiIndex construction.
type Option func(*options)

// WithBucketPageSize sets the page capacity of each bucket in the word
// directory. Larger pages amortize allocation over more pushes at the
// cost of more wasted space in sparsely populated buckets.
func WithBucketPageSize(n uint32) Option {
	return func(o *options) {
		o.bucketPageSize = n
	}
}

// WithHashTableSize sets the number of hash slots in the key table's
// directory, H. Size it comparably to the expected item count; undersizing
// degrades lookups to long chains, oversizing wastes a fixed 4·H bytes.
func WithHashTableSize(n uint32) Option {
	return func(o *options) {
		o.hashTableSize = n
	}
}

// WithBlobPageSize sets the page capacity of the item blob store.
func WithBlobPageSize(n uint32) Option {
	return func(o *options) {
		o.blobPageSize = n
	}
}

// WithBruteForceBound sets β, the radius above which RangeQueryOptimized
// delegates to RangeQueryBruteForce instead of enumerating candidates.
//
// Above β the candidate set approaches the whole corpus, so the linear
// scan is both simpler and faster — it skips the bucket probes and the
// candidate dedup pass entirely. β must be in [0, 1].
func WithBruteForceBound(b float32) Option {
	return func(o *options) {
		o.bruteForceBound = b
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &hammingindex.BasicMetricsCollector{}
//	idx, _ := hammingindex.New(32, hammingindex.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			o.metricsCollector = NoopMetricsCollector{}
			return
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations. Pass nil to
// disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			o.logger = NoopLogger()
			return
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger at the given level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

const (
	defaultBucketPageSize  = 128
	defaultHashTableSize   = 1 << 16
	defaultBlobPageSize    = 4096
	defaultBruteForceBound = 0.25
)

func applyOptions(optFns []Option) options {
	o := options{
		bucketPageSize:   defaultBucketPageSize,
		hashTableSize:    defaultHashTableSize,
		blobPageSize:     defaultBlobPageSize,
		bruteForceBound:  defaultBruteForceBound,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
