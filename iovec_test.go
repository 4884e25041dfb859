package segbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeekCountOnlyWithNilOut(t *testing.T) {
	b := NewBuffer()
	b.AddReadOnly([]byte("abc"))
	b.AddReadOnly([]byte("def"))

	needed := b.Peek(0, b.GetContentLen(), nil)
	assert.Equal(t, 2, needed)
}

func TestPeekFillsProvidedSlots(t *testing.T) {
	b := NewBuffer()
	b.AddReadOnly([]byte("abc"))
	b.AddReadOnly([]byte("def"))

	var iovs [2]Iovec
	needed := b.Peek(0, b.GetContentLen(), iovs[:])
	require.Equal(t, 2, needed)
	assert.Equal(t, "abc", string(iovs[0].Bytes))
	assert.Equal(t, "def", string(iovs[1].Bytes))
}

func TestPeekPartialRangeWithinOnePage(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Add([]byte("0123456789")))

	var iovs [4]Iovec
	needed := b.Peek(2, 5, iovs[:])
	require.Equal(t, 1, needed)
	assert.Equal(t, "234", string(iovs[0].Bytes))
}

func TestGetSpaceLenReflectsTailFreeSpace(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.ensureSpace(100))
	assert.GreaterOrEqual(t, b.GetSpaceLen(), 100)
}

func TestNumNonEmptyPagesSkipsEmptyOnes(t *testing.T) {
	b := NewBuffer()
	b.AddReadOnly([]byte("abc"))
	b.appendPages([]*page{newOwnedPage(0)})
	b.AddReadOnly([]byte("def"))
	assert.Equal(t, 2, b.numNonEmptyPages())
}
