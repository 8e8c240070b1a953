package rangeio

import "github.com/samber/mo"

// ReadOptions Configuration for a single read. `ReadOptions` is supplied for
// each read call and controls the behavior of the read.
type ReadOptions struct {
	// The byte range to read. Absent means the whole object.
	Range mo.Option[ByteRange]

	// ChunkSize bounds the size of individual object store requests.
	// Zero selects DefaultChunkSize.
	ChunkSize uint64
}

func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		Range:     mo.None[ByteRange](),
		ChunkSize: DefaultChunkSize,
	}
}
