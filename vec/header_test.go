package vec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vecmerge/errs"
)

func TestHeader_Bytes(t *testing.T) {
	// 100 samples of 1350 bytes: the canonical createsamples example.
	header := Header{TotalCount: 100, RecordSize: 1350}

	data := header.Bytes()

	require.Len(t, data, HeaderSize)
	require.Equal(t, []byte{
		0x64, 0x00, 0x00, 0x00, // total count 100
		0x46, 0x05, 0x00, 0x00, // record size 1350
		0x00, 0x00, // min value
		0x00, 0x00, // max value
	}, data)
}

func TestHeader_Parse(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		original := Header{
			TotalCount: 80,
			RecordSize: 900,
			MinValue:   -3,
			MaxValue:   255,
		}

		parsed := Header{}
		err := parsed.Parse(original.Bytes())

		require.NoError(t, err)
		require.Equal(t, original, parsed)
	})

	t.Run("negative fields carry through", func(t *testing.T) {
		original := Header{TotalCount: -1, RecordSize: -900, MinValue: -32768, MaxValue: -1}

		parsed := Header{}
		err := parsed.Parse(original.Bytes())

		require.NoError(t, err)
		require.Equal(t, original, parsed)
	})

	t.Run("short input", func(t *testing.T) {
		parsed := Header{}
		err := parsed.Parse([]byte{1, 2, 3})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("oversized input", func(t *testing.T) {
		parsed := Header{}
		err := parsed.Parse(make([]byte, HeaderSize+1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})
}

func TestReadHeader(t *testing.T) {
	t.Run("reads exactly the header", func(t *testing.T) {
		original := Header{TotalCount: 50, RecordSize: 900}
		payload := []byte("sample payload bytes")
		r := bytes.NewReader(append(original.Bytes(), payload...))

		header, err := ReadHeader(r)

		require.NoError(t, err)
		require.Equal(t, original, header)

		// The payload must remain unread for the caller.
		rest := make([]byte, len(payload))
		_, err = r.Read(rest)
		require.NoError(t, err)
		require.Equal(t, payload, rest)
	})

	t.Run("truncated archive", func(t *testing.T) {
		_, err := ReadHeader(strings.NewReader("short"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("empty archive", func(t *testing.T) {
		_, err := ReadHeader(bytes.NewReader(nil))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})
}
