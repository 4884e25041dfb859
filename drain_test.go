package segbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainFrontAligned(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Add([]byte("0123456789")))
	b.Drain(4)
	assert.Equal(t, "456789", b.PeekString(6))
	assert.Equal(t, 6, b.GetContentLen())
}

func TestDrainWholePageForgetDoesNotRelease(t *testing.T) {
	data := []byte("all of it")
	released := 0
	b := NewBuffer()
	b.AddReference(data, func(d []byte, ud any) { released++ }, nil)

	b.drainRange(0, len(data), drainOpts{release: false, recycle: false})
	assert.Equal(t, 0, released)
	assert.Equal(t, 0, b.GetContentLen())
}

func TestDrainInteriorHoleOnWritablePage(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Add([]byte("0123456789")))
	b.drainRange(3, 6, drainOpts{release: true, recycle: true})
	assert.Equal(t, "012" + "6789", b.PeekString(b.GetContentLen()))
}

func TestDrainInteriorHoleOnReadOnlyPagePanics(t *testing.T) {
	b := NewBuffer()
	b.AddReadOnly([]byte("0123456789"))
	assert.Panics(t, func() {
		b.drainRange(3, 6, drainOpts{release: true, recycle: true})
	})
}

func TestDrainEmptyRangeIsNoop(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, b.Add([]byte("abc")))
	b.drainRange(1, 1, defaultDrainOpts)
	assert.Equal(t, 3, b.GetContentLen())
}

func TestDrainAllRestoresInlinePage(t *testing.T) {
	b := NewBuffer()
	b.AddReadOnly([]byte("x"))
	b.DrainAll()
	assert.Equal(t, 0, b.GetContentLen())
	assert.Equal(t, 1, b.pages.len())
	assert.True(t, b.pages.at(0).reallocatable())
}
