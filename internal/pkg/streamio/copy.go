// Package streamio copies byte streams with pooled buffers.
package streamio

import (
	"io"
	"sync"
)

const bufferSize = 64 * 1024

var buffers = sync.Pool{
	New: func() interface{} {
		b := make([]byte, bufferSize)
		return &b
	},
}

// Copy streams src into dst and returns the number of bytes written.
func Copy(dst io.Writer, src io.Reader) (int64, error) {
	bp := buffers.Get().(*[]byte)
	defer buffers.Put(bp)
	return io.CopyBuffer(dst, src, *bp)
}
