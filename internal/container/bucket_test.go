package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketEmptyAllocatesNoPage(t *testing.T) {
	b := NewBucket(4)
	assert.Equal(t, uint32(0), b.Size())
	assert.Equal(t, 0, b.AllocatedSize())

	var out []uint32
	b.CollectInto(&out)
	assert.Empty(t, out)
}

func TestBucketPushAndCollectPreservesOrder(t *testing.T) {
	b := NewBucket(2)
	for _, v := range []uint32{10, 20, 30, 40, 50} {
		b.Push(v)
	}
	assert.Equal(t, uint32(5), b.Size())

	var out []uint32
	b.CollectInto(&out)
	assert.Equal(t, []uint32{10, 20, 30, 40, 50}, out)
}

func TestBucketPagesSpanAcrossPageCapacity(t *testing.T) {
	b := NewBucket(3)
	for i := uint32(0); i < 10; i++ {
		b.Push(i)
	}
	// 10 items at pageCap 3 need 4 pages.
	assert.Equal(t, 4*3*4, b.AllocatedSize())
}

func TestBucketClearResetsToEmpty(t *testing.T) {
	b := NewBucket(4)
	b.Push(1)
	b.Push(2)
	b.Clear()

	assert.Equal(t, uint32(0), b.Size())
	assert.Equal(t, 0, b.AllocatedSize())

	var out []uint32
	b.CollectInto(&out)
	assert.Empty(t, out)
}

func TestBucketForEachVisitsEveryValue(t *testing.T) {
	b := NewBucket(4)
	want := []uint32{1, 2, 3, 4, 5, 6, 7}
	for _, v := range want {
		b.Push(v)
	}

	var got []uint32
	b.ForEach(func(v uint32) { got = append(got, v) })
	assert.Equal(t, want, got)
}
