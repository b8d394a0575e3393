package coomat

import "log/slog"

// Compression selects the codec applied to snapshot payloads.
type Compression uint8

const (
	// CompressionZstd compresses snapshots with zstd. This is the default.
	CompressionZstd Compression = iota

	// CompressionLZ4 compresses snapshots with lz4.
	CompressionLZ4

	// CompressionNone stores snapshots uncompressed.
	CompressionNone
)

func (c Compression) String() string {
	switch c {
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	case CompressionNone:
		return "none"
	default:
		return "unknown"
	}
}

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	compression Compression
}

// Option configures a Matrix.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel installs a JSON stderr logger at the given level.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewJSONLogger(level)
	}
}

// WithMetricsCollector sets the metrics collector.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		o.metrics = collector
	}
}

// WithSnapshotCompression sets the snapshot compression codec.
func WithSnapshotCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		compression: CompressionZstd,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}
