package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	// Little endian puts the LSB first.
	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	require.Equal(t, byte(0x02), bytes[0])
	require.Equal(t, byte(0x01), bytes[1])

	require.Equal(t, testValue, engine.Uint16(bytes))
}

func TestEndianEngine_AppendRoundTrip(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := engine.AppendUint32(nil, 0x01020304)
	buf = engine.AppendUint16(buf, 0x0506)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01, 0x06, 0x05}, buf)
	require.Equal(t, uint32(0x01020304), engine.Uint32(buf[0:4]))
	require.Equal(t, uint16(0x0506), engine.Uint16(buf[4:6]))
}
