package rangeio

import (
	"github.com/gammazero/deque"

	"github.com/rangeio/rangeio-go/internal/assert"
)

// DefaultChunkSize bounds the size of a single object store request.
const DefaultChunkSize = 4 * 1024 * 1024

// Range is a half-open interval over byte offsets.
type Range struct {
	// The lower bound of the range (inclusive).
	Start uint64

	// The upper bound of the range (exclusive).
	End uint64
}

// ByteRange converts the interval into a byte-range expression. A zero End
// has no representable inclusive end offset and panics.
func (r Range) ByteRange() ByteRange {
	return FromBounds(Included(r.Start), Excluded(r.End))
}

// planChunks splits a resolved read into sub-ranges of at most chunkSize
// bytes, queued in read order. An empty interval yields an empty plan.
func planChunks(r Range, chunkSize uint64) *deque.Deque[Range] {
	assert.True(chunkSize > 0, "chunk size must be positive")

	plan := deque.New[Range]()
	for start := r.Start; start < r.End; start += chunkSize {
		end := start + chunkSize
		if end > r.End || end < start {
			end = r.End
		}
		plan.PushBack(Range{Start: start, End: end})
	}
	return plan
}
