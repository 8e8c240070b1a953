package rangeio

import "errors"

var (
	ErrOffsetOverflow = errors.New("byte offset exceeds signed 64-bit seek width")
	ErrObjectStore    = errors.New("object store error")
)
