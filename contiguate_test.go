package segbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeContiguousNoopWhenAlreadySingle(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Add([]byte("already one page")))
	first := b.pages.at(0)

	out := b.MakeContiguous(b.GetContentLen())
	assert.Equal(t, "already one page", string(out))
	assert.Same(t, first, b.pages.at(0))
}

func TestMakeContiguousPartialPrefix(t *testing.T) {
	b := NewBuffer()
	b.AddReadOnly([]byte("abc"))
	b.AddReadOnly([]byte("def"))
	b.AddReadOnly([]byte("ghi"))

	out := b.MakeContiguous(5)
	assert.Equal(t, "abcde", string(out))
	assert.Equal(t, 9, b.GetContentLen())
	assert.Equal(t, "abcdefghi", b.PeekString(9))
}

func TestMakeContiguousSuppressesIntermediateEvents(t *testing.T) {
	b := NewBuffer()
	b.AddReadOnly([]byte("abc"))
	b.AddReadOnly([]byte("def"))

	events := 0
	b.SetChangedCB(func(orig, added, deleted int) { events++ })
	b.MakeAllContiguous()
	assert.Equal(t, 0, events)
}
