package rangeio

import (
	"fmt"
	"io"
	"math"

	"github.com/samber/mo"

	"github.com/rangeio/rangeio-go/internal/assert"
)

// Unit is the range unit token used in the textual rendering. Byte ranges
// are the only supported unit.
const Unit = "bytes"

const (
	BoundIncluded BoundKind = iota + 1
	BoundExcluded
	BoundUnbounded
)

type BoundKind int

// Bound is one endpoint of an interval over byte offsets.
type Bound struct {
	kind  BoundKind
	value uint64
}

// Included returns a bound that contains the offset v.
func Included(v uint64) Bound {
	return Bound{kind: BoundIncluded, value: v}
}

// Excluded returns a bound adjacent to, but not containing, the offset v.
func Excluded(v uint64) Bound {
	return Bound{kind: BoundExcluded, value: v}
}

// Unbounded returns a bound with no endpoint.
func Unbounded() Bound {
	return Bound{kind: BoundUnbounded}
}

func (b Bound) Kind() BoundKind {
	return b.kind
}

// ByteRange describes a contiguous subset of a resource's bytes, either by
// absolute start/end offsets or by a trailing suffix length. It is an
// immutable value; copies may be shared freely across goroutines.
type ByteRange struct {
	suffix bool
	start  uint64
	end    mo.Option[uint64]
	count  uint64
}

// NewRange returns a range covering bytes from start (0-based, inclusive)
// through end (inclusive) when present, otherwise through the last byte of
// the resource. start > end is representable; such a range yields no bytes.
func NewRange(start uint64, end mo.Option[uint64]) ByteRange {
	return ByteRange{start: start, end: end}
}

// NewSuffix returns a range covering the last count bytes of the resource.
// count is never validated against the resource's real size.
func NewSuffix(count uint64) ByteRange {
	return ByteRange{suffix: true, count: count}
}

// FromBounds builds a range from a pair of interval endpoints over byte
// offsets. An Excluded(0) end bound has no representable offset and panics.
func FromBounds(start, end Bound) ByteRange {
	var s uint64
	switch start.kind {
	case BoundExcluded:
		s = start.value + 1
	case BoundIncluded:
		s = start.value
	}

	e := mo.None[uint64]()
	switch end.kind {
	case BoundIncluded:
		e = mo.Some(end.value)
	case BoundExcluded:
		assert.True(end.value > 0, "end bound Excluded(0) has no representable offset")
		e = mo.Some(end.value - 1)
	}
	return NewRange(s, e)
}

func (r ByteRange) IsSuffix() bool {
	return r.suffix
}

// Start returns the first byte offset of an explicit range.
func (r ByteRange) Start() uint64 {
	return r.start
}

// End returns the last byte offset of an explicit range, if bounded.
func (r ByteRange) End() mo.Option[uint64] {
	return r.end
}

// SuffixLen returns the byte count of a suffix range.
func (r ByteRange) SuffixLen() uint64 {
	return r.count
}

// ExpectedLen computes how many bytes the range would yield. The result is
// absent when the range is unbounded and totalLength is unknown, or when
// start lies past the end (an empty range). A suffix range always yields its
// count, even when that exceeds totalLength; callers that know the real size
// clamp externally.
func (r ByteRange) ExpectedLen(totalLength mo.Option[uint64]) mo.Option[uint64] {
	if r.suffix {
		return mo.Some(r.count)
	}

	if end, ok := r.end.Get(); ok {
		if r.start > end {
			return mo.None[uint64]()
		}
		n := end - r.start
		if n == math.MaxUint64 {
			// n+1 would wrap
			return mo.None[uint64]()
		}
		return mo.Some(n + 1)
	}

	total, ok := totalLength.Get()
	if !ok || r.start > total {
		return mo.None[uint64]()
	}
	return mo.Some(total - r.start)
}

// String renders the range in the canonical header-value form, one of
// "bytes=<start>-<end>", "bytes=<start>-" or "bytes=-<count>".
func (r ByteRange) String() string {
	if r.suffix {
		return fmt.Sprintf("%s=-%d", Unit, r.count)
	}
	if end, ok := r.end.Get(); ok {
		return fmt.Sprintf("%s=%d-%d", Unit, r.start, end)
	}
	return fmt.Sprintf("%s=%d-", Unit, r.start)
}

// SeekFrom is a positioning instruction telling a sequential reader where to
// begin. Whence is io.SeekStart or io.SeekEnd.
type SeekFrom struct {
	Offset int64
	Whence int
}

// SeekFrom converts the range into a positioning instruction. The end of an
// explicit range is not encoded; bounding the read is the caller's
// responsibility. Fails with ErrOffsetOverflow when the offset does not fit
// the signed 64-bit seek width.
func (r ByteRange) SeekFrom() (SeekFrom, error) {
	if r.suffix {
		if r.count > math.MaxInt64 {
			return SeekFrom{}, fmt.Errorf("%w: suffix length %d", ErrOffsetOverflow, r.count)
		}
		return SeekFrom{Offset: -int64(r.count), Whence: io.SeekEnd}, nil
	}
	if r.start > math.MaxInt64 {
		return SeekFrom{}, fmt.Errorf("%w: start offset %d", ErrOffsetOverflow, r.start)
	}
	return SeekFrom{Offset: int64(r.start), Whence: io.SeekStart}, nil
}
