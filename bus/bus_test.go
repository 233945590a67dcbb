package bus

import (
	"testing"

	"github.com/florianehmann/6502-emulator/memory"
	"github.com/stretchr/testify/require"
)

func TestAddRegionRejectsOverlap(t *testing.T) {
	b := New()
	require.NoError(t, b.AddRegion(0x0000, memory.NewRAM(0x1000)))
	err := b.AddRegion(0x0800, memory.NewRAM(0x1000))
	require.ErrorIs(t, err, ErrOverlap)
}

func TestAddRegionAllowsAdjacent(t *testing.T) {
	b := New()
	require.NoError(t, b.AddRegion(0x0000, memory.NewRAM(0x1000)))
	require.NoError(t, b.AddRegion(0x1000, memory.NewRAM(0x1000)))
}

func TestReadWriteRoundTrip(t *testing.T) {
	b := New()
	require.NoError(t, b.AddRegion(0x0200, memory.NewRAM(0x0100)))
	b.Write(0x0205, 0x42)
	require.Equal(t, uint8(0x42), b.Read(0x0205))
}

func TestUnmappedReadReturnsZero(t *testing.T) {
	b := New()
	require.NoError(t, b.AddRegion(0x0000, memory.NewRAM(0x10)))
	require.Equal(t, uint8(0), b.Read(0xBEEF))
}

func TestUnmappedWriteIsDropped(t *testing.T) {
	b := New()
	require.NotPanics(t, func() { b.Write(0xBEEF, 0x01) })
}

func TestLenReflectsHighestRegion(t *testing.T) {
	b := New()
	require.NoError(t, b.AddRegion(0x0000, memory.NewRAM(0x0200)))
	require.NoError(t, b.AddRegion(0xFF00, memory.NewRAM(0x0100)))
	require.Equal(t, 0x10000, b.Len())
}

func TestWriteBytesLoadsSequentially(t *testing.T) {
	b := New()
	require.NoError(t, b.AddRegion(0x0200, memory.NewRAM(0x0100)))
	require.NoError(t, b.WriteBytes(0x0200, []byte{0xA9, 0x01, 0x8D}))
	require.Equal(t, uint8(0xA9), b.Read(0x0200))
	require.Equal(t, uint8(0x01), b.Read(0x0201))
	require.Equal(t, uint8(0x8D), b.Read(0x0202))
}

func TestWriteBytesOutOfSpanFailsFast(t *testing.T) {
	b := New()
	require.NoError(t, b.AddRegion(0x0200, memory.NewRAM(0x0010)))
	// Span is [0x0200,0x0210); 16 bytes from 0x0205 run to 0x0215.
	err := b.WriteBytes(0x0205, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	require.ErrorIs(t, err, ErrOutOfSpan)
	// Nothing should have been written since the check fails before any Write.
	require.Equal(t, uint8(0), b.Read(0x0205))
}

func TestWriteBytesHex(t *testing.T) {
	b := New()
	require.NoError(t, b.AddRegion(0x0200, memory.NewRAM(0x0010)))
	require.NoError(t, b.WriteBytesHex(0x0200, "A9 01 8D 00 02"))
	require.Equal(t, uint8(0xA9), b.Read(0x0200))
	require.Equal(t, uint8(0x02), b.Read(0x0204))
}
