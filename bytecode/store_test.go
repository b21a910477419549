package bytecode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestROM(t *testing.T) {
	rom := NewROM([]byte{0x01, 0x02, 0x03})
	require.Equal(t, 0, rom.Capacity())
	require.Equal(t, 3, rom.Len(), "Len reports the program length even though Capacity is 0")
	require.False(t, rom.Empty())
	require.Equal(t, uint8(0x01), rom.Next())
	require.Equal(t, uint8(0x02), rom.Next())
	pos, ok := rom.Tell()
	require.True(t, ok)
	require.Equal(t, 2, pos)
	require.Equal(t, uint8(0x03), rom.Next())
	require.Equal(t, uint8(NOP), rom.Next(), "reading past the end yields NOP")

	rom.Rewind()
	require.Equal(t, uint8(0x01), rom.Next())
	require.False(t, rom.Write(0xFF), "ROM is never writable")
}

func TestRAMWriteAndSuspend(t *testing.T) {
	ram := NewRAM(4)
	require.Equal(t, 4, ram.Len())
	require.True(t, ram.Empty())
	require.True(t, ram.Write(0x10))
	require.True(t, ram.Write(0x11))
	require.False(t, ram.Empty())

	ram.Rewind()
	ram.Suspend()
	require.True(t, ram.Suspended())
	require.Equal(t, uint8(NOP), ram.Next(), "suspended store streams all-NOP")
	ram.Resume()
	require.False(t, ram.Suspended())
	require.Equal(t, uint8(0x10), ram.Next())

	require.True(t, ram.Write(0x12))
	require.True(t, ram.Write(0x13))
	require.False(t, ram.Write(0x14), "writes past capacity fail")

	require.NoError(t, ram.Seek(0))
	require.Error(t, ram.Seek(99))
}

func TestRAMSuspendResumeBalanced(t *testing.T) {
	ram := NewRAM(2)
	ram.Resume() // unmatched resume must not underflow
	require.False(t, ram.Suspended())
	ram.Suspend()
	ram.Suspend()
	require.True(t, ram.Suspended())
	ram.Resume()
	require.True(t, ram.Suspended(), "still suspended after only one of two resumes")
	ram.Resume()
	require.False(t, ram.Suspended())
}

func TestNVRAMMagicLifecycle(t *testing.T) {
	backing := make([]byte, 8)
	nv := NewNVRAM(backing)
	require.True(t, nv.Empty())
	require.Equal(t, 6, nv.Capacity())
	require.Equal(t, 6, nv.Len(), "Len matches Capacity for a writable backing")
	require.Equal(t, uint8(NOP), nv.Next(), "no magic yet: infinite NOPs")

	require.True(t, nv.Write(0x05))
	require.False(t, nv.Empty(), "first write stamps the magic automatically")
	require.Equal(t, byte(0xCA), backing[0])
	require.Equal(t, byte(0xFE), backing[1])
	require.Equal(t, byte(0x05), backing[2])

	nv.Rewind()
	require.Equal(t, uint8(0x05), nv.Next())
}

func TestNVRAMPreStampedBacking(t *testing.T) {
	backing := []byte{0xCA, 0xFE, 0x07, 0x08}
	nv := NewNVRAM(backing)
	require.False(t, nv.Empty())
	require.Equal(t, uint8(0x07), nv.Next())
	require.Equal(t, uint8(0x08), nv.Next())
	require.Equal(t, uint8(NOP), nv.Next())
}
