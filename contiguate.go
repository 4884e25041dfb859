package segbuf

// MakeContiguous guarantees the first n bytes of content live in a single
// contiguous backing array and returns a slice over exactly those n bytes
// (spec.md §4.6). The returned slice is invalidated by the buffer's next
// mutation. n may not exceed GetContentLen().
func (b *Buffer) MakeContiguous(n int) []byte {
	if n < 0 || n > b.contentLen {
		contractViolation("makeContiguous: n exceeds content length")
	}
	if n == 0 {
		return nil
	}

	start := b.resolvePosition(n)
	if start.pageIdx == 0 || (start.pageIdx == 1 && start.pagePos == 0) {
		// Already contiguous in the first page: nothing to do, possibly
		// after a boundary-exact single-page case.
		first := b.pages.at(0)
		return first.buf[first.readPos : first.readPos+n]
	}

	var out []byte
	b.notify.muted(func() int { return b.contentLen }, func() {
		out = make([]byte, n)
		off := 0
		for _, iov := range b.peekIovecs(0, n) {
			off += copy(out[off:], iov.Bytes)
		}
		// Splice the collapsed region back in as a single owned page at
		// the head, and drop the original pages that held it (released,
		// not recycled: their storage is superseded by out, and any
		// unref hooks on reference pages among them fire, since their
		// external storage is no longer referenced by b).
		b.drainRange(0, n, drainOpts{release: true, recycle: false})
		if b.contentLen == 0 {
			// n covered the whole buffer: drainRange just reinstated a
			// fresh empty stub page (spec.md §3's "always own one page"
			// invariant) that would otherwise survive alongside out as a
			// spurious second page. Drop it so prependPages' single-page
			// fast path installs out as the only page.
			b.pages.reset()
		}
		b.prependPages([]*page{{buf: out, writePos: n, kind: storageOwned}})
	})
	first := b.pages.at(0)
	return first.buf[first.readPos : first.readPos+n]
}

// MakeAllContiguous is MakeContiguous(GetContentLen()).
func (b *Buffer) MakeAllContiguous() []byte {
	return b.MakeContiguous(b.contentLen)
}
