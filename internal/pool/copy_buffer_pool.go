// Package pool provides reusable byte buffers for streaming payload copies.
package pool

import "sync"

// CopyBufferSize is the size of the buffers handed out by the pool.
const CopyBufferSize = 64 * 1024 // 64KiB

var copyBufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, CopyBufferSize)
		return &buf
	},
}

// GetCopyBuffer retrieves a copy buffer from the pool.
func GetCopyBuffer() *[]byte {
	buf, _ := copyBufferPool.Get().(*[]byte)
	return buf
}

// PutCopyBuffer returns a copy buffer to the pool for reuse.
func PutCopyBuffer(buf *[]byte) {
	if buf == nil {
		return
	}

	copyBufferPool.Put(buf)
}
