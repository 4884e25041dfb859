package segbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePositionWithinFirstPage(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Add([]byte("0123456789")))
	p := b.resolvePosition(3)
	assert.Equal(t, 0, p.pageIdx)
	assert.Equal(t, 3, p.pagePos)
}

func TestResolvePositionAtPageBoundaryAdvances(t *testing.T) {
	b := NewBuffer()
	b.AddReadOnly([]byte("abc"))
	b.AddReadOnly([]byte("def"))

	// Index 0 is NewBuffer's empty inline page; "abc" is 1, "def" is 2.
	p := b.resolvePosition(3)
	assert.Equal(t, 2, p.pageIdx)
	assert.Equal(t, 0, p.pagePos)
}

func TestResolvePositionAtEndReturnsSentinel(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Add([]byte("abc")))
	p := b.resolvePosition(3)
	assert.Equal(t, b.pages.len(), p.pageIdx)
	assert.Equal(t, 3, p.contentPos)
}

func TestResolvePositionSkipsEmptyPages(t *testing.T) {
	b := NewBuffer()
	b.AddReadOnly([]byte("abc"))
	b.appendPages([]*page{newOwnedPage(0)})
	b.AddReadOnly([]byte("def"))

	p := b.resolvePosition(3)
	assert.Equal(t, 3, b.pages.at(p.pageIdx).contentLen())
}
