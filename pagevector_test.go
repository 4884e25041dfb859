package segbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageVectorInlineFastPath(t *testing.T) {
	var v pageVector
	p := newOwnedPage(4)
	v.insertAt(0, []*page{p})
	require.Equal(t, 1, v.len())
	assert.Same(t, p, v.at(0))
	assert.Nil(t, v.overflow)
}

func TestPageVectorPromotesOnSecondInsert(t *testing.T) {
	var v pageVector
	p1 := newOwnedPage(4)
	p2 := newOwnedPage(4)
	v.insertAt(0, []*page{p1})
	v.insertAt(1, []*page{p2})

	require.Equal(t, 2, v.len())
	require.NotNil(t, v.overflow)
	assert.Nil(t, v.inline)
	assert.Same(t, p1, v.at(0))
	assert.Same(t, p2, v.at(1))
}

func TestPageVectorInsertAtMiddle(t *testing.T) {
	var v pageVector
	a, b, c := newOwnedPage(1), newOwnedPage(1), newOwnedPage(1)
	v.insertAt(0, []*page{a, c})
	v.insertAt(1, []*page{b})
	require.Equal(t, 3, v.len())
	assert.Same(t, a, v.at(0))
	assert.Same(t, b, v.at(1))
	assert.Same(t, c, v.at(2))
}

func TestPageVectorReset(t *testing.T) {
	var v pageVector
	v.insertAt(0, []*page{newOwnedPage(1), newOwnedPage(1)})
	v.reset()
	assert.Equal(t, 0, v.len())
	assert.Nil(t, v.inline)
	assert.Nil(t, v.overflow)
}
