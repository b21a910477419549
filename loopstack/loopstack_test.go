package loopstack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBeginEndFiniteLoop(t *testing.T) {
	s := New(DefaultMaxDepth)
	require.True(t, s.Begin(42, 3))
	require.Equal(t, 1, s.Size())

	addr, jump := s.End()
	require.True(t, jump)
	require.Equal(t, uint32(42), addr)
	require.Equal(t, 1, s.Size(), "first End decrements, doesn't pop")

	addr, jump = s.End()
	require.True(t, jump)
	require.Equal(t, uint32(42), addr)

	addr, jump = s.End()
	require.False(t, jump, "last iteration pops without reporting a jump")
	require.Equal(t, uint32(0), addr)
	require.Equal(t, 0, s.Size())
}

func TestEndInfiniteLoopNeverPops(t *testing.T) {
	s := New(DefaultMaxDepth)
	require.True(t, s.Begin(7, 0))
	for i := 0; i < 5; i++ {
		addr, jump := s.End()
		require.True(t, jump)
		require.Equal(t, uint32(7), addr)
	}
	require.Equal(t, 1, s.Size())
}

func TestBeginRespectsMaxDepth(t *testing.T) {
	s := New(2)
	require.True(t, s.Begin(1, 1))
	require.True(t, s.Begin(2, 1))
	require.False(t, s.Begin(3, 1), "third nested loop exceeds maxDepth")
	require.Equal(t, 2, s.Size())
}

func TestEndOnEmptyStack(t *testing.T) {
	s := New(DefaultMaxDepth)
	addr, jump := s.End()
	require.False(t, jump)
	require.Equal(t, uint32(0), addr)
}

func TestClear(t *testing.T) {
	s := New(DefaultMaxDepth)
	s.Begin(1, 0)
	s.Begin(2, 0)
	require.Equal(t, 2, s.Size())
	s.Clear()
	require.Equal(t, 0, s.Size())
}

func TestNewDefaultsNonPositiveDepth(t *testing.T) {
	s := New(0)
	require.Equal(t, DefaultMaxDepth, s.MaxDepth())
	s = New(-3)
	require.Equal(t, DefaultMaxDepth, s.MaxDepth())
}

func TestNestedLoopsUnwindIndependently(t *testing.T) {
	s := New(DefaultMaxDepth)
	s.Begin(100, 2) // outer, 2 iterations
	s.Begin(200, 0) // inner, infinite

	addr, jump := s.End() // unwinds inner (infinite, never pops)
	require.True(t, jump)
	require.Equal(t, uint32(200), addr)
	require.Equal(t, 2, s.Size())
}
