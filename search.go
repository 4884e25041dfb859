package segbuf

// Search looks for needle within content range [begin, end), scanning
// across page boundaries without requiring contiguity, and returns the
// offset of the first match plus whether one was found (spec.md §4.7).
// An empty needle matches immediately at begin.
func (b *Buffer) Search(begin, end int, needle []byte) (matchPos int, found bool) {
	if end > b.contentLen {
		end = b.contentLen
	}
	if begin < 0 {
		begin = 0
	}
	if len(needle) == 0 {
		if begin <= end {
			return begin, true
		}
		return 0, false
	}
	if begin >= end {
		return 0, false
	}

	first := needle[0]
	for pos := begin; pos+len(needle) <= end; pos++ {
		c, ok := b.byteAt(pos)
		if !ok || c != first {
			continue
		}
		if b.matchesAt(pos, end, needle) {
			return pos, true
		}
	}
	return 0, false
}

// byteAt returns the single byte at content offset pos.
func (b *Buffer) byteAt(pos int) (byte, bool) {
	p := b.resolvePosition(pos)
	if p.pageIdx >= b.pages.len() {
		return 0, false
	}
	pg := b.pages.at(p.pageIdx)
	return pg.buf[pg.readPos+p.pagePos], true
}

// matchesAt verifies needle against content starting at pos, reading
// byte-by-byte across page boundaries as needed. limit bounds how far the
// comparison may read (the caller's search-range end).
func (b *Buffer) matchesAt(pos, limit int, needle []byte) bool {
	start := b.resolvePosition(pos)
	idx, pagePos := start.pageIdx, start.pagePos
	n := b.pages.len()

	for _, want := range needle {
		if pos >= limit {
			return false
		}
		for idx < n {
			pg := b.pages.at(idx)
			cl := pg.contentLen()
			if pagePos >= cl {
				idx++
				pagePos = 0
				continue
			}
			break
		}
		if idx >= n {
			return false
		}
		pg := b.pages.at(idx)
		got := pg.buf[pg.readPos+pagePos]
		if got != want {
			return false
		}
		pagePos++
		pos++
	}
	return true
}
