package vecmerge

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/vecmerge/internal/pool"
	"github.com/arloliu/vecmerge/vec"
)

// FileInfo describes a single sample archive.
type FileInfo struct {
	// Path is the inspected file path.
	Path string
	// Header is the archive header as declared on disk.
	Header vec.Header
	// PayloadBytes is the number of payload bytes following the header.
	PayloadBytes int64
	// PayloadDigest is the xxHash64 of the payload bytes.
	PayloadDigest uint64
}

// Inspect decodes the header of the archive at path and digests its payload.
//
// Header values are reported exactly as declared; no bounds checking is
// applied, so negative counts or sizes pass through untouched. The payload
// digest makes it cheap to compare archive contents without holding both
// payloads in memory.
func Inspect(path string) (*FileInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	header, err := vec.ReadHeader(f)
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	digest := xxhash.New()

	buf := pool.GetCopyBuffer()
	defer pool.PutCopyBuffer(buf)

	payloadBytes, err := io.CopyBuffer(digest, f, *buf)
	if err != nil {
		return nil, fmt.Errorf("read payload of %s: %w", path, err)
	}

	return &FileInfo{
		Path:          path,
		Header:        header,
		PayloadBytes:  payloadBytes,
		PayloadDigest: digest.Sum64(),
	}, nil
}
