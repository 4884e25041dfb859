package segbuf

// ChangeFunc is invoked synchronously from within a mutating Buffer
// operation. Per spec.md §5, it MUST NOT mutate the buffer it observes;
// doing so is undefined behavior (the C source documents but does not
// enforce this, and neither does this port — see DESIGN.md).
type ChangeFunc func(origLen, added, deleted int)

// notifier accumulates add/delete byte counts and fires a callback under
// mute and coalesce modes (spec.md §4.8). Zero value is ready to use: no
// callback, unmuted, uncoalesced.
type notifier struct {
	cb ChangeFunc

	origLen int
	added   int
	deleted int

	muteDepth     int
	coalesceDepth int
}

func (n *notifier) setCallback(cb ChangeFunc) {
	n.cb = cb
}

// onAdd records m added bytes and maybe-emits.
func (n *notifier) onAdd(currentLen, m int) {
	if m == 0 {
		return
	}
	if n.muteDepth > 0 {
		return
	}
	n.added += m
	n.maybeEmit(currentLen)
}

// onDelete records m deleted bytes and maybe-emits.
func (n *notifier) onDelete(currentLen, m int) {
	if m == 0 {
		return
	}
	if n.muteDepth > 0 {
		return
	}
	n.deleted += m
	n.maybeEmit(currentLen)
}

// maybeEmit fires the callback iff one is set, neither muted nor
// coalescing, and there is something to report. currentLen becomes the
// new origLen baseline after emission.
func (n *notifier) maybeEmit(currentLen int) {
	if n.cb == nil {
		return
	}
	if n.muteDepth > 0 || n.coalesceDepth > 0 {
		return
	}
	if n.added == 0 && n.deleted == 0 {
		return
	}
	cb, orig, add, del := n.cb, n.origLen, n.added, n.deleted
	n.added, n.deleted = 0, 0
	n.origLen = currentLen
	cb(orig, add, del)
}

// mute begins a nested silenced section: changes made while any mute is
// active are not counted at all, not merely deferred.
func (n *notifier) mute() {
	n.muteDepth++
}

// unmute ends one nested mute. On the 1->0 transition, maybe-emit is
// re-checked in case a coalesce is also ending at the same moment.
func (n *notifier) unmute(currentLen int) {
	if n.muteDepth == 0 {
		return
	}
	n.muteDepth--
	if n.muteDepth == 0 {
		n.maybeEmit(currentLen)
	}
}

// beginCoalescing begins a nested section where changes are counted but
// not emitted.
func (n *notifier) beginCoalescing() {
	n.coalesceDepth++
}

// endCoalescing ends one nested coalesce. On the 1->0 transition,
// maybe-emit runs.
func (n *notifier) endCoalescing(currentLen int) {
	if n.coalesceDepth == 0 {
		return
	}
	n.coalesceDepth--
	if n.coalesceDepth == 0 {
		n.maybeEmit(currentLen)
	}
}

// muted runs fn with change events silenced for its duration, restoring
// the previous mute state afterward. Used internally by operations that
// must not leak their bookkeeping to the caller (make-contiguous,
// ensure-space, page-break insertion — spec.md §4.8).
func (n *notifier) muted(currentLenAfter func() int, fn func()) {
	n.mute()
	fn()
	n.unmute(currentLenAfter())
}
