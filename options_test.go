package hammingindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptionsUsesDefaultsWhenNoneGiven(t *testing.T) {
	o := applyOptions(nil)

	assert.EqualValues(t, defaultBucketPageSize, o.bucketPageSize)
	assert.EqualValues(t, defaultHashTableSize, o.hashTableSize)
	assert.EqualValues(t, defaultBlobPageSize, o.blobPageSize)
	assert.EqualValues(t, defaultBruteForceBound, o.bruteForceBound)
	assert.NotNil(t, o.metricsCollector)
	assert.NotNil(t, o.logger)
}

func TestApplyOptionsOverridesDefaults(t *testing.T) {
	o := applyOptions([]Option{
		WithBucketPageSize(64),
		WithHashTableSize(1024),
		WithBlobPageSize(512),
		WithBruteForceBound(0.5),
	})

	assert.EqualValues(t, 64, o.bucketPageSize)
	assert.EqualValues(t, 1024, o.hashTableSize)
	assert.EqualValues(t, 512, o.blobPageSize)
	assert.EqualValues(t, float32(0.5), o.bruteForceBound)
}

func TestApplyOptionsIgnoresNilOptionFunc(t *testing.T) {
	o := applyOptions([]Option{nil, WithBucketPageSize(32)})

	assert.EqualValues(t, 32, o.bucketPageSize)
}

func TestWithMetricsCollectorSetsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	o := applyOptions([]Option{WithMetricsCollector(mc)})

	assert.Same(t, mc, o.metricsCollector)
}

func TestWithLoggerSetsLogger(t *testing.T) {
	logger := NoopLogger()

	o := applyOptions([]Option{WithLogger(logger)})

	assert.Same(t, logger, o.logger)
}
