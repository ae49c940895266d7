package vec

import (
	"fmt"
	"io"

	"github.com/arloliu/vecmerge/endian"
	"github.com/arloliu/vecmerge/errs"
)

var engine = endian.GetLittleEndianEngine()

// Header represents the fixed-size header section at the start of a sample
// archive.
type Header struct {
	// TotalCount is the number of sample records stored in the archive.
	TotalCount int32 // byte offset 0-3
	// RecordSize is the byte size of one sample's pixel data (width * height).
	RecordSize int32 // byte offset 4-7
	// MinValue is a reserved statistics field. Merged archives carry 0.
	MinValue int16 // byte offset 8-9
	// MaxValue is a reserved statistics field. Merged archives carry 0.
	MaxValue int16 // byte offset 10-11
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 12 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 12 bytes
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// Plain conversions preserve the bit patterns of signed fields.
	h.TotalCount = int32(engine.Uint32(data[0:4]))
	h.RecordSize = int32(engine.Uint32(data[4:8]))
	h.MinValue = int16(engine.Uint16(data[8:10]))
	h.MaxValue = int16(engine.Uint16(data[10:12]))

	return nil
}

// Bytes serializes the Header into a 12-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, 0, HeaderSize)

	b = engine.AppendUint32(b, uint32(h.TotalCount))
	b = engine.AppendUint32(b, uint32(h.RecordSize))
	b = engine.AppendUint16(b, uint16(h.MinValue))
	b = engine.AppendUint16(b, uint16(h.MaxValue))

	return b
}

// ReadHeader reads exactly HeaderSize bytes from r and decodes them.
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize if r yields fewer than 12 bytes, or the
//     underlying read error
func ReadHeader(r io.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, fmt.Errorf("%w: archive shorter than %d bytes", errs.ErrInvalidHeaderSize, HeaderSize)
		}

		return Header{}, err
	}

	h := Header{}
	if err := h.Parse(buf[:]); err != nil {
		return Header{}, err
	}

	return h, nil
}
