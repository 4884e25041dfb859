// Package netorder adds host/network byte-order helpers on top of
// segbuf.Buffer, grounded on the same little/big-endian split used
// throughout the wider codebase's byte helpers.
package netorder

import (
	"encoding/binary"

	"github.com/tuannm99/segbuf"
)

var (
	// LE and BE expose the two orderings Add/Read work with, for callers
	// that need to pick one explicitly rather than via the *16/*32/*64
	// helpers below (which all default to big-endian, matching wire
	// protocol convention).
	LE = binary.LittleEndian
	BE = binary.BigEndian
)

// AddU16 appends v in big-endian (network) order.
func AddU16(b *segbuf.Buffer, v uint16) error {
	var tmp [2]byte
	BE.PutUint16(tmp[:], v)
	return b.Add(tmp[:])
}

// AddU32 appends v in big-endian (network) order.
func AddU32(b *segbuf.Buffer, v uint32) error {
	var tmp [4]byte
	BE.PutUint32(tmp[:], v)
	return b.Add(tmp[:])
}

// AddU64 appends v in big-endian (network) order.
func AddU64(b *segbuf.Buffer, v uint64) error {
	var tmp [8]byte
	BE.PutUint64(tmp[:], v)
	return b.Add(tmp[:])
}

// ReadU16 removes and decodes a big-endian uint16 from the buffer's head.
// It returns segbuf.ErrShortRead if fewer than 2 bytes are available.
func ReadU16(b *segbuf.Buffer) (uint16, error) {
	var tmp [2]byte
	if b.GetContentLen() < len(tmp) {
		return 0, segbuf.ErrShortRead
	}
	b.Remove(tmp[:])
	return BE.Uint16(tmp[:]), nil
}

// ReadU32 removes and decodes a big-endian uint32 from the buffer's head.
func ReadU32(b *segbuf.Buffer) (uint32, error) {
	var tmp [4]byte
	if b.GetContentLen() < len(tmp) {
		return 0, segbuf.ErrShortRead
	}
	b.Remove(tmp[:])
	return BE.Uint32(tmp[:]), nil
}

// ReadU64 removes and decodes a big-endian uint64 from the buffer's head.
func ReadU64(b *segbuf.Buffer) (uint64, error) {
	var tmp [8]byte
	if b.GetContentLen() < len(tmp) {
		return 0, segbuf.ErrShortRead
	}
	b.Remove(tmp[:])
	return BE.Uint64(tmp[:]), nil
}

// PeekU32At decodes a big-endian uint32 at content offset off without
// draining anything or changing the page layout: a value split across
// pages is copied into a local 4-byte array before decoding. It is meant
// for reading a length-prefix header while deciding whether the rest of
// a frame has arrived yet.
func PeekU32At(b *segbuf.Buffer, off int) (uint32, error) {
	if b.GetContentLen() < off+4 {
		return 0, segbuf.ErrShortRead
	}
	var iovs [4]segbuf.Iovec
	got := b.Peek(off, off+4, iovs[:])
	bufs := iovs[:got]
	if got > len(iovs) {
		bufs = make([]segbuf.Iovec, got)
		b.Peek(off, off+4, bufs)
	}
	if len(bufs) == 1 {
		return BE.Uint32(bufs[0].Bytes), nil
	}
	var tmp [4]byte
	n := 0
	for _, iov := range bufs {
		n += copy(tmp[n:], iov.Bytes)
	}
	return BE.Uint32(tmp[:]), nil
}
