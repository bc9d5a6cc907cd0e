package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesceMergesContiguousSameMode(t *testing.T) {
	entries := []entry{
		{mode: 4, first: 0, count: 3},
		{mode: 4, first: 3, count: 3},
		{mode: 4, first: 6, count: 3},
	}
	merged := coalesce(entries)
	assert.Equal(t, []entry{{mode: 4, first: 0, count: 9}}, merged)
}

func TestCoalesceSplitsOnModeChange(t *testing.T) {
	entries := []entry{
		{mode: 4, first: 0, count: 3},
		{mode: 5, first: 3, count: 3},
	}
	merged := coalesce(entries)
	assert.Equal(t, []entry{
		{mode: 4, first: 0, count: 3},
		{mode: 5, first: 3, count: 3},
	}, merged)
}

func TestCoalesceSplitsOnGap(t *testing.T) {
	entries := []entry{
		{mode: 4, first: 0, count: 3},
		{mode: 4, first: 10, count: 3},
	}
	merged := coalesce(entries)
	assert.Len(t, merged, 2)
}

func TestCoalesceEmpty(t *testing.T) {
	assert.Nil(t, coalesce(nil))
}

func newTestQueue(enabled bool) (*Queue, *[]entry) {
	q := New(enabled)
	var drawn []entry
	q.draw = func(mode uint32, first, count int32) {
		drawn = append(drawn, entry{mode: mode, first: first, count: count})
	}
	return q, &drawn
}

func TestPushAccumulatesWhenEnabled(t *testing.T) {
	q, _ := newTestQueue(true)
	q.Push(4, 0, 3)
	q.Push(4, 3, 3)
	assert.Equal(t, 2, q.Pending())
}

func TestPushDrawsImmediatelyWhenDisabled(t *testing.T) {
	q, drawn := newTestQueue(false)
	q.Push(4, 0, 3)
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, []entry{{mode: 4, first: 0, count: 3}}, *drawn)
}

func TestFlushEmptiesQueueAndCoalesces(t *testing.T) {
	q, drawn := newTestQueue(true)
	q.pending = []entry{
		{mode: 4, first: 0, count: 3},
		{mode: 4, first: 3, count: 3},
	}
	q.Flush()
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, []entry{{mode: 4, first: 0, count: 6}}, *drawn)
}

func TestQueueDepthCapForcesFlush(t *testing.T) {
	q, _ := newTestQueue(true)
	for i := 0; i < maxQueueDepth+5; i++ {
		q.pending = append(q.pending, entry{mode: 4, first: int32(i), count: 1})
	}
	assert.Equal(t, maxQueueDepth+5, q.Pending())
	// Push beyond the cap flushes the pending queue and draws the
	// triggering call immediately, rather than queuing it.
	q.Push(4, int32(maxQueueDepth+5), 1)
	assert.Equal(t, 0, q.Pending())
}
