package netorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/segbuf"
)

func TestU32RoundTrip(t *testing.T) {
	b := segbuf.NewBuffer()
	require.NoError(t, AddU32(b, 0x01020304))

	v, err := ReadU32(b)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), v)
	assert.Equal(t, 0, b.GetContentLen())
}

func TestReadShortReturnsErrShortRead(t *testing.T) {
	b := segbuf.NewBuffer()
	require.NoError(t, b.Add([]byte{0x01, 0x02}))

	_, err := ReadU32(b)
	assert.ErrorIs(t, err, segbuf.ErrShortRead)
}

func TestU64RoundTrip(t *testing.T) {
	b := segbuf.NewBuffer()
	require.NoError(t, AddU64(b, 0x0102030405060708))

	v, err := ReadU64(b)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), v)
}

func TestPeekU32AtDoesNotDrain(t *testing.T) {
	b := segbuf.NewBuffer()
	require.NoError(t, AddU32(b, 42))
	require.NoError(t, b.Add([]byte("trailer")))

	v, err := PeekU32At(b, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)
	assert.Equal(t, 4+len("trailer"), b.GetContentLen())
}

func TestPeekU32AtAcrossPageBoundary(t *testing.T) {
	b := segbuf.NewBuffer()
	b.AddReadOnly([]byte{0x00, 0x00})
	b.AddReadOnly([]byte{0x01, 0x02})

	v, err := PeekU32At(b, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00000102), v)
}
