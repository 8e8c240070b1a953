package rangeio

import (
	"context"
	"fmt"
	"io"

	"github.com/kapetan-io/tackle/set"
	"github.com/maypok86/otter"
	"github.com/samber/mo"
	"github.com/thanos-io/objstore"
	"go.uber.org/zap"

	"github.com/rangeio/rangeio-go/internal/assert"
	"github.com/rangeio/rangeio-go/rangeio/logger"
)

// ------------------------------------------------
// ObjectReader is an abstraction over object storage
// to read byte ranges of stored objects
// ------------------------------------------------

type ObjectReader struct {
	bucket  objstore.Bucket
	lengths otter.Cache[string, uint64]
}

func NewObjectReader(bucket objstore.Bucket) *ObjectReader {
	cache, err := otter.MustBuilder[string, uint64](1000).Build()
	assert.True(err == nil, "")
	return &ObjectReader{
		bucket:  bucket,
		lengths: cache,
	}
}

// Len returns the total byte length of the object, from cache when warm.
func (r *ObjectReader) Len(ctx context.Context, path string) (uint64, error) {
	if size, ok := r.lengths.Get(path); ok {
		return size, nil
	}
	attrs, err := r.bucket.Attributes(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("%w: attributes of %q: %s", ErrObjectStore, path, err)
	}
	size := uint64(attrs.Size)
	r.lengths.Set(path, size)
	return size, nil
}

// Read returns the bytes of the object selected by opts.Range, or the whole
// object when no range is given. Ranges reaching past the object's end are
// clamped to it; a range yielding no bytes returns empty data, not an error.
func (r *ObjectReader) Read(ctx context.Context, path string, opts ReadOptions) ([]byte, error) {
	set.Default(&opts.ChunkSize, uint64(DefaultChunkSize))

	br, ok := opts.Range.Get()
	if !ok {
		return r.readAll(ctx, path)
	}

	resolved, err := r.resolve(ctx, path, br)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, resolved.End-resolved.Start)
	plan := planChunks(resolved, opts.ChunkSize)
	for plan.Len() > 0 {
		chunk, err := r.readRange(ctx, path, plan.PopFront())
		if err != nil {
			return nil, err
		}
		data = append(data, chunk...)
	}
	return data, nil
}

// resolve turns a byte-range expression into a half-open interval bounded by
// the object's real size. Clamping happens here, not in ByteRange: the
// expression does not know the object and never clamps itself.
func (r *ObjectReader) resolve(ctx context.Context, path string, br ByteRange) (Range, error) {
	seek, err := br.SeekFrom()
	if err != nil {
		return Range{}, err
	}

	total, err := r.Len(ctx, path)
	if err != nil {
		return Range{}, err
	}

	var start uint64
	if seek.Whence == io.SeekEnd {
		count := uint64(-seek.Offset)
		if count > total {
			count = total
		}
		start = total - count
	} else {
		start = uint64(seek.Offset)
	}
	if start >= total {
		return Range{}, nil
	}

	length := total - start
	if expected, ok := br.ExpectedLen(mo.Some(total)).Get(); ok {
		if expected < length {
			length = expected
		}
	} else {
		// start past end, a deliberately empty range
		length = 0
	}

	logger.Debug("resolved byte range",
		zap.String("path", path),
		zap.Stringer("range", br),
		zap.Uint64("start", start),
		zap.Uint64("length", length))
	return Range{Start: start, End: start + length}, nil
}

func (r *ObjectReader) readRange(ctx context.Context, path string, rng Range) ([]byte, error) {
	read, err := r.bucket.GetRange(ctx, path, int64(rng.Start), int64(rng.End-rng.Start))
	if err != nil {
		logger.Warn("range get failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: get %d-%d of %q: %s", ErrObjectStore, rng.Start, rng.End, path, err)
	}
	defer func() { _ = read.Close() }()

	data, err := io.ReadAll(read)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %s", ErrObjectStore, path, err)
	}
	return data, nil
}

func (r *ObjectReader) readAll(ctx context.Context, path string) ([]byte, error) {
	read, err := r.bucket.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%w: get %q: %s", ErrObjectStore, path, err)
	}
	defer func() { _ = read.Close() }()

	data, err := io.ReadAll(read)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %s", ErrObjectStore, path, err)
	}
	return data, nil
}
