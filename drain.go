package segbuf

// drainOpts threads the two internal policy flags spec.md §4.5 describes:
// whether a page whose entire live content is drained gets released
// (unref fired, storage freed if reallocatable) or merely forgotten
// (descriptor dropped, storage left to whoever else owns it — used by
// MoveTo to hand storage to another buffer). recycle additionally allows
// the largest such page to be kept as scratch space instead.
type drainOpts struct {
	release bool
	recycle bool
}

var defaultDrainOpts = drainOpts{release: true, recycle: true}

// Drain removes the first n bytes of content, releasing/recycling pages
// as they empty.
func (b *Buffer) Drain(n int) {
	b.drainRange(0, n, defaultDrainOpts)
}

// DrainAll removes the whole buffer's content.
func (b *Buffer) DrainAll() {
	b.drainRange(0, b.contentLen, defaultDrainOpts)
}

// drainRange is drain(range) generalized with internal policy flags
// (spec.md §4.5). [begin, end) must already be clamped to
// [0, contentLen] by the caller's resolvePosition use — drainRange itself
// clamps defensively.
func (b *Buffer) drainRange(begin, end int, opts drainOpts) {
	if end > b.contentLen {
		end = b.contentLen
	}
	if begin < 0 {
		begin = 0
	}
	if begin >= end {
		return
	}
	deleted := end - begin

	n := b.pages.len()
	acc := 0 // content offset at the start of the page currently examined

	var recycleCandidate *page
	recycleIdx := -1 // index within keep holding recycleCandidate, if any
	keep := make([]*page, 0, n)

	for i := 0; i < n; i++ {
		p := b.pages.at(i)
		cl := p.contentLen()
		pStart, pEnd := acc, acc+cl
		acc = pEnd

		// Intersection of [begin,end) with this page's content range,
		// expressed in page-local coordinates [loLocal, hiLocal).
		lo := begin
		if lo < pStart {
			lo = pStart
		}
		hi := end
		if hi > pEnd {
			hi = pEnd
		}
		if lo >= hi {
			// No intersection. A page that still holds content survives
			// untouched; a page that was already empty (a stale recycle
			// candidate from an earlier drain, or an unfilled pagebreak
			// stub) contributes nothing and is dropped here so compaction
			// never leaves more than one recycled page lying around
			// (spec.md §4.5). release is a no-op beyond firing any unref
			// hook — there is no content to preserve either way.
			if cl == 0 {
				p.release()
				continue
			}
			keep = append(keep, p)
			continue
		}

		loLocal := lo - pStart
		hiLocal := hi - pStart

		switch {
		case loLocal == 0 && hiLocal == cl:
			// Whole page content drained. When the caller isn't releasing
			// (opts.release == false — MoveTo handing the descriptor to
			// another buffer, which already holds the same *page pointer*),
			// the page must be left completely untouched: no reset, no
			// recycle, just dropped from b's own vector.
			if !opts.release {
				continue
			}
			p.reset()
			// A page carrying an unref hook is never recycled: it is
			// released so the hook fires as its storage leaves the buffer.
			if opts.recycle && p.recyclable() && p.ref == nil && (recycleCandidate == nil || len(p.buf) > len(recycleCandidate.buf)) {
				if recycleCandidate != nil {
					// A bigger candidate supersedes the old one: finalize
					// the old one and drop its now-stale slot from keep.
					finalizeDrainedPage(recycleCandidate, opts)
					keep = append(keep[:recycleIdx], keep[recycleIdx+1:]...)
				}
				recycleCandidate = p
				recycleIdx = len(keep)
				keep = append(keep, p)
			} else {
				finalizeDrainedPage(p, opts)
			}
		case loLocal == 0:
			// Intersection is a front-aligned prefix: advance readPos.
			p.readPos += hiLocal
			keep = append(keep, p)
		case hiLocal == cl:
			// Intersection is a back-aligned suffix: retract writePos.
			p.writePos -= (hiLocal - loLocal)
			keep = append(keep, p)
		default:
			// Interior hole: slide the tail left over it. Requires the
			// page to be writable (spec.md §4.5's documented limitation —
			// drains in practice target the front).
			if !p.writable() {
				contractViolation("middle-drain of a non-writable page")
			}
			holeLen := hiLocal - loLocal
			copy(p.buf[p.readPos+loLocal:], p.buf[p.readPos+hiLocal:p.writePos])
			p.writePos -= holeLen
			keep = append(keep, p)
		}
	}

	rebuildPages(b, keep)
	b.contentLen -= deleted
	b.notify.onDelete(b.contentLen, deleted)

	if b.contentLen == 0 && b.pages.len() == 0 {
		// Nothing survived at all (no recyclable candidate, no untouched
		// pages): reinstate a fresh empty inline page so the buffer still
		// logically owns one (spec.md §3).
		b.pages.insertAt(0, []*page{newOwnedPage(0)})
	}
}

// finalizeDrainedPage releases a fully-drained page's storage (firing its
// unref hook first) when opts.release is set; otherwise the page is
// simply forgotten, leaving its storage for whoever else now owns the
// descriptor (MoveTo's case).
func finalizeDrainedPage(p *page, opts drainOpts) {
	if opts.release {
		p.release()
	}
}

// rebuildPages replaces b's page vector contents with keep, compacting
// away removed slots and dropping the overflow array entirely if it is
// now empty (spec.md §4.5: "If the vector has become empty and an
// overflow array exists, free it").
func rebuildPages(b *Buffer, keep []*page) {
	b.pages.reset()
	if len(keep) == 0 {
		return
	}
	if len(keep) == 1 {
		b.pages.inline = keep[0]
		return
	}
	ov := make([]*page, len(keep), growPageCap(0, len(keep)))
	copy(ov, keep)
	b.pages.overflow = ov
}
