package segbuf

// ensureSpace guarantees the tail page has at least n bytes of free space,
// growing or appending a page as needed (spec.md §4.4's three-tier
// policy): reuse existing trailing free space, else slide live content
// down to page-start if that alone frees enough room, else grow/allocate
// via the configured Allocator using nextPow2 sizing.
func (b *Buffer) ensureSpace(n int) error {
	if n <= 0 {
		return nil
	}
	tail := b.pages.last()
	if tail != nil && tail.writable() && tail.freeLen() >= n {
		return nil
	}

	if tail != nil && tail.writable() && tail.readPos > 0 {
		live := tail.contentLen()
		copy(tail.buf[:live], tail.buf[tail.readPos:tail.writePos])
		tail.readPos = 0
		tail.writePos = live
		if tail.freeLen() >= n {
			return nil
		}
	}

	if tail != nil && tail.reallocatable() {
		need := tail.writePos + n
		newSize := nextPow2(need)
		grown := globalAllocator.Realloc(tail.buf, newSize)
		if grown == nil {
			return ErrOutOfMemory
		}
		tail.buf = grown
		return nil
	}

	newSize := nextPow2(n)
	np := newOwnedPage(newSize)
	b.appendPages([]*page{np})
	return nil
}

// ReserveSpace guarantees room for n more bytes in the tail page and
// returns a view over at least n (and possibly more) free bytes the
// caller may write into directly, then must pass to CommitSpace with the
// number of bytes actually written (spec.md's reserve_space/commit_space
// pair, §4.4). The returned Iovec is invalidated by any other mutating
// call made before CommitSpace.
func (b *Buffer) ReserveSpace(n int) (Iovec, error) {
	if err := b.ensureSpace(n); err != nil {
		return Iovec{}, err
	}
	tail := b.pages.last()
	return Iovec{Bytes: tail.free()}, nil
}

// PeekSpace returns a view over the tail page's current free space
// without growing anything; it may be shorter than any particular
// caller's needs, including empty.
func (b *Buffer) PeekSpace() Iovec {
	tail := b.pages.last()
	if tail == nil {
		return Iovec{}
	}
	return Iovec{Bytes: tail.free()}
}

// CommitSpace advances the tail page's write cursor by n bytes, which
// must have been written into the Iovec returned by the most recent
// ReserveSpace/PeekSpace call and must not exceed its length — exceeding
// it is a contract violation, not a recoverable error, since it would
// silently fabricate content (spec.md §4.4, §6).
func (b *Buffer) CommitSpace(n int) error {
	if n == 0 {
		return nil
	}
	tail := b.pages.last()
	if tail == nil || n < 0 || n > tail.freeLen() {
		contractViolation("commitSpace: n exceeds reserved free space")
	}
	tail.writePos += n
	b.contentLen += n
	b.notify.onAdd(b.contentLen, n)
	return nil
}
