// Package batch coalesces adjacent glDrawArrays calls that share a
// primitive mode into a single draw, the same way the teacher engine
// issues one DrawArrays/DrawElements per GPUMesh rather than one per
// vertex: here the "mesh" is a sequence of same-mode ranges the hosted
// application issued back-to-back, contiguous because nothing GL-state-
// changing happened between them.
package batch

import gl "github.com/go-gl/gl/v4.1-core/gl"

// maxQueueDepth bounds how many pending draws accumulate before a flush is
// forced, per the spec's 256-entry queue cap.
const maxQueueDepth = 256

// entry is one queued glDrawArrays(mode, first, count) call.
type entry struct {
	mode  uint32
	first int32
	count int32
}

// Queue accumulates glDrawArrays calls and coalesces adjacent ranges that
// share a primitive mode and are contiguous (the next range's first equals
// the previous range's first+count) into a single draw at Flush time.
// Anything that breaks contiguity — a mode change, a gap, a state change
// the caller signals via Flush — ends the run.
type Queue struct {
	enabled bool
	pending []entry

	// draw issues one real DrawArrays call. It is a field rather than a
	// direct gl.DrawArrays call so tests can substitute a recording stub
	// without a live GL context.
	draw func(mode uint32, first, count int32)
}

// New returns a Queue. enabled mirrors config.DrawCallBatching: when false,
// Push draws immediately and Flush is a no-op, so the override table can
// stay wired to this type regardless of the setting.
func New(enabled bool) *Queue {
	return &Queue{enabled: enabled, draw: gl.DrawArrays}
}

// SetEnabled updates the batching toggle at runtime, e.g. when the host
// calls prismgl's configuration setter after Init. A pending queue is
// flushed first so nothing queued under the old setting is lost.
func (q *Queue) SetEnabled(enabled bool) {
	if !enabled {
		q.Flush()
	}
	q.enabled = enabled
}

// Push records one glDrawArrays call. When batching is disabled, or the
// queue has reached its depth cap, it draws immediately instead of
// queuing.
func (q *Queue) Push(mode uint32, first, count int32) {
	if !q.enabled {
		q.draw(mode, first, count)
		return
	}
	if len(q.pending) >= maxQueueDepth {
		q.Flush()
		q.draw(mode, first, count)
		return
	}
	q.pending = append(q.pending, entry{mode: mode, first: first, count: count})
}

// Flush coalesces the pending queue into the minimum number of DrawArrays
// calls and issues them, then empties the queue.
func (q *Queue) Flush() {
	for _, r := range coalesce(q.pending) {
		q.draw(r.mode, r.first, r.count)
	}
	q.pending = q.pending[:0]
}

// Pending reports how many draws are currently queued, for tests and for
// callers that want to flush proactively before a state change.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// coalesce merges adjacent entries that share a mode and are contiguous
// (b.first == a.first+a.count) into one wider entry. It is a pure function
// so the merge logic can be tested without a GL context.
func coalesce(entries []entry) []entry {
	if len(entries) == 0 {
		return nil
	}
	merged := make([]entry, 0, len(entries))
	current := entries[0]
	for _, next := range entries[1:] {
		if next.mode == current.mode && next.first == current.first+current.count {
			current.count += next.count
			continue
		}
		merged = append(merged, current)
		current = next
	}
	merged = append(merged, current)
	return merged
}
