package segbuf

// pageVector is the buffer's ordered sequence of pages, with a small-size
// optimization for the overwhelmingly common zero- or one-page case
// (spec.md §3, §9): a single inline page embedded in the vector header,
// promoted to a heap-allocated overflow slice only once a second page
// needs to exist. The promotion happens exactly once, on the insertion
// that grows the vector from 1 to >=2 pages. The way back is drain's
// rebuild (see drain.go): when a single page survives it becomes the
// inline page again, and the overflow slice is dropped.
type pageVector struct {
	inline   *page   // used when overflow == nil
	overflow []*page // used once len(overflow) would exceed 1
}

// minOverflowCap is the floor overflow slices grow from, per spec.md
// §4.3 ("doubling from a floor of 16").
const minOverflowCap = 16

// len reports the number of page descriptors currently held, inline or
// overflowed. A freshly constructed buffer logically owns one empty
// inline page, so this is never observably 0 from outside buffer.go.
func (v *pageVector) len() int {
	if v.overflow != nil {
		return len(v.overflow)
	}
	if v.inline != nil {
		return 1
	}
	return 0
}

// at returns the i'th page descriptor in order.
func (v *pageVector) at(i int) *page {
	if v.overflow != nil {
		return v.overflow[i]
	}
	if i == 0 && v.inline != nil {
		return v.inline
	}
	panic("segbuf: pageVector index out of range")
}

// last returns the trailing page, or nil if the vector is empty.
func (v *pageVector) last() *page {
	n := v.len()
	if n == 0 {
		return nil
	}
	return v.at(n - 1)
}

// ensureOverflow brings the overflow slice online if it is not already,
// moving any live inline page to slot 0 first (spec.md §4.3: "If the
// inline page is live and the overflow array is being brought online,
// move the inline page to slot 0 first"). capNeeded is the number of
// descriptors the caller is about to need room for.
func (v *pageVector) ensureOverflow(capNeeded int) {
	if v.overflow != nil {
		if cap(v.overflow) < capNeeded {
			grown := make([]*page, len(v.overflow), growPageCap(cap(v.overflow), capNeeded))
			copy(grown, v.overflow)
			v.overflow = grown
		}
		return
	}
	c := minOverflowCap
	for c < capNeeded {
		c *= 2
	}
	ov := make([]*page, 0, c)
	if v.inline != nil {
		ov = append(ov, v.inline)
		v.inline = nil
	}
	v.overflow = ov
}

// growPageCap doubles from cur until it reaches at least needed.
func growPageCap(cur, needed int) int {
	if cur == 0 {
		cur = minOverflowCap
	}
	for cur < needed {
		cur *= 2
	}
	return cur
}

// insertAt splices new descriptors into position pos, shifting the tail
// right. If the vector is currently empty (no inline, no overflow) and
// exactly one page is being inserted, that page becomes the inline page
// directly with no overflow allocation at all (spec.md §4.3).
func (v *pageVector) insertAt(pos int, pages []*page) {
	if len(pages) == 0 {
		return
	}
	if v.overflow == nil && v.inline == nil && len(pages) == 1 && pos == 0 {
		v.inline = pages[0]
		return
	}
	cur := v.len()
	v.ensureOverflow(cur + len(pages))
	ov := v.overflow
	ov = ov[:cur+len(pages)]
	copy(ov[pos+len(pages):], ov[pos:cur])
	copy(ov[pos:], pages)
	v.overflow = ov
}

// forgetFront drops the first n descriptors without releasing them (so a
// later release of this vector does not fire their unref hooks) and
// shifts the remainder down, shrinking the vector by n. MoveTo does not
// call it; it forgets moved pages through drainRange instead.
func (v *pageVector) forgetFront(n int) {
	if n <= 0 {
		return
	}
	if v.overflow != nil {
		copy(v.overflow, v.overflow[n:])
		v.overflow = v.overflow[:len(v.overflow)-n]
		if len(v.overflow) == 0 {
			v.overflow = nil
		}
		return
	}
	if v.inline != nil {
		v.inline = nil
	}
}

// removeAt drops exactly one descriptor at index i without releasing its
// storage (the caller has already decided what to do with it), shifting
// the tail down.
func (v *pageVector) removeAt(i int) *page {
	if v.overflow != nil {
		p := v.overflow[i]
		copy(v.overflow[i:], v.overflow[i+1:])
		v.overflow = v.overflow[:len(v.overflow)-1]
		if len(v.overflow) == 0 {
			v.overflow = nil
		}
		return p
	}
	p := v.inline
	v.inline = nil
	return p
}

// replaceAt swaps the descriptor at index i for p, keeping the slot. Drain
// does not call it; it rebuilds the vector from the surviving pages.
func (v *pageVector) replaceAt(i int, p *page) {
	if v.overflow != nil {
		v.overflow[i] = p
		return
	}
	v.inline = p
}

// all returns every live descriptor in order. Callers must not retain
// the returned slice past the next mutation.
func (v *pageVector) all() []*page {
	if v.overflow != nil {
		return v.overflow
	}
	if v.inline != nil {
		return []*page{v.inline}
	}
	return nil
}

// reset drops every descriptor without releasing storage (used when the
// buffer has already released/forgotten each page individually and just
// needs the vector emptied, e.g. at the end of drainAll).
func (v *pageVector) reset() {
	v.inline = nil
	v.overflow = nil
}
