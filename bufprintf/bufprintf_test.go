package bufprintf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannm99/segbuf"
)

func TestFprintfWritesFormattedOutput(t *testing.T) {
	b := segbuf.NewBuffer()
	n, err := Fprintf(b, "%s=%d", "count", 7)
	require.NoError(t, err)
	assert.Equal(t, n, b.GetContentLen())
	assert.Equal(t, "count=7", b.PeekString(b.GetContentLen()))
}

func TestWriterImplementsIOWriter(t *testing.T) {
	b := segbuf.NewBuffer()
	w := NewWriter(b)
	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", b.PeekString(3))
}
