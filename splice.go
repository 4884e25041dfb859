package segbuf

// insertPages splices new page descriptors into the vector at position
// pos (0 == prepend, pages.len() == append), bumps the cached content
// length by their total, and fires an add event. It never copies bytes —
// only descriptors move (spec.md §4.3).
func (b *Buffer) insertPages(pos int, newPages []*page) {
	if len(newPages) == 0 {
		return
	}
	added := 0
	for _, p := range newPages {
		added += p.contentLen()
	}
	b.pages.insertAt(pos, newPages)
	b.contentLen += added
	b.notify.onAdd(b.contentLen, added)
}

// appendPages is insertPages at the end.
func (b *Buffer) appendPages(newPages []*page) {
	b.insertPages(b.pages.len(), newPages)
}

// prependPages is insertPages at the start.
func (b *Buffer) prependPages(newPages []*page) {
	b.insertPages(0, newPages)
}

// MoveTo implements spec.md's remove_buffer(src=b, tgt, n): move up to n
// bytes of content from b to tgt by splicing page descriptors rather than
// copying bytes, except for at most one partial trailing page which is
// byte-copied. It returns the number of bytes actually moved (less than n
// if b held fewer).
//
// This is the operation that transfers unref-hook ownership: since the
// moved pages' descriptors are forgotten (not released) on b's side, b's
// eventual destruction will not fire their hooks — tgt's will, when tgt
// later drains or is destroyed.
func (b *Buffer) MoveTo(tgt *Buffer, n int) int {
	if n <= 0 || b.contentLen == 0 {
		return 0
	}
	if n > b.contentLen {
		n = b.contentLen
	}

	end := b.resolvePosition(n)
	moved := n

	if end.pageIdx > 0 {
		wholePages := make([]*page, end.pageIdx)
		copy(wholePages, b.pages.all()[:end.pageIdx])
		tgt.appendPages(wholePages)
	}

	if end.pagePos > 0 {
		src := b.pages.at(end.pageIdx)
		tailStart := src.readPos + end.pagePos
		partial := append([]byte(nil), src.buf[src.readPos:tailStart]...)
		tgt.appendPages([]*page{{buf: partial, writePos: len(partial), kind: storageOwned}})
	}

	b.drainRange(0, n, drainOpts{release: false, recycle: false})
	return moved
}

// MoveAllTo is spec.md's add_buffer(tgt, src) == remove_buffer(src, tgt, all).
func (b *Buffer) MoveAllTo(tgt *Buffer) int {
	return b.MoveTo(tgt, b.contentLen)
}
