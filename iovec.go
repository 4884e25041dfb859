package segbuf

// Iovec is a non-owning view over a contiguous run of one page's content.
// It is invalidated by any subsequent mutating call on the buffer it was
// derived from (spec.md §3, §5) — there is no type-system enforcement of
// that in Go any more than there was in C; callers must not retain an
// Iovec's Bytes slice across a mutation.
type Iovec struct {
	Bytes []byte
}

// Peek fills up to len(out) Iovec entries spanning [b, e) of the buffer's
// content, in order, and returns the number of entries the whole range
// would require (which may exceed len(out) if out is too small — pass a
// nil or zero-length out to get a pure count). Entries never include
// empty pages and never cross a page boundary; the first entry may start
// past a page's readPos and the last may stop before a page's writePos.
func (b *Buffer) Peek(begin, end int, out []Iovec) (needed int) {
	if end > b.contentLen {
		end = b.contentLen
	}
	if begin < 0 {
		begin = 0
	}
	if begin >= end {
		return 0
	}

	start := b.resolvePosition(begin)
	n := b.pages.len()
	remaining := end - begin

	idx := start.pageIdx
	pagePos := start.pagePos
	for idx < n && remaining > 0 {
		p := b.pages.at(idx)
		cl := p.contentLen()
		if cl == 0 {
			idx++
			continue
		}
		avail := cl - pagePos
		take := avail
		if take > remaining {
			take = remaining
		}
		if take > 0 {
			if needed < len(out) {
				out[needed] = Iovec{Bytes: p.buf[p.readPos+pagePos : p.readPos+pagePos+take]}
			}
			needed++
			remaining -= take
		}
		idx++
		pagePos = 0
	}
	return needed
}

// PeekAll is Peek([0, GetContentLen())).
func (b *Buffer) PeekAll(out []Iovec) int {
	return b.Peek(0, b.contentLen, out)
}

// peekIovecs returns every Iovec spanning [begin, end), sized to fit
// regardless of how many pages the range crosses. Internal callers that
// need to walk or copy a whole range (Remove, PeekString, CopyOut,
// MakeContiguous) use this instead of each repeating the
// fixed-array-then-overflow dance, which is easy to get backwards (the
// overflow check must happen before the fixed array is resliced, not
// after).
func (b *Buffer) peekIovecs(begin, end int) []Iovec {
	var small [8]Iovec
	got := b.Peek(begin, end, small[:])
	if got <= len(small) {
		return small[:got]
	}
	full := make([]Iovec, got)
	b.Peek(begin, end, full)
	return full
}

// GetContentLen returns the cached total content length. It is kept in
// sync with the sum of per-page content lengths at every API boundary
// (spec.md §3 invariant); it is never recomputed by walking pages.
func (b *Buffer) GetContentLen() int { return b.contentLen }

// GetSpaceLen returns the trailing page's free-space length, or 0 for an
// empty buffer (there is always at least the inline page, which starts
// with len(buf)==0 until grown).
func (b *Buffer) GetSpaceLen() int {
	p := b.pages.last()
	if p == nil {
		return 0
	}
	return p.freeLen()
}

// numNonEmptyPages is peek(range=whole buffer, nil, 0) in the C API: the
// page count invariant checked in spec.md §8.
func (b *Buffer) numNonEmptyPages() int {
	n := 0
	for _, p := range b.pages.all() {
		if p.contentLen() > 0 {
			n++
		}
	}
	return n
}
