package segbuf

// Buffer is a segmented, growable byte queue: logically one contiguous
// stream of content, physically a sequence of pages spliced together
// (spec.md §3). The zero value is not ready to use — construct with
// NewBuffer.
type Buffer struct {
	pages      pageVector
	contentLen int
	notify     notifier
}

// NewBuffer returns an empty buffer holding one empty, owned, zero-length
// inline page.
func NewBuffer() *Buffer {
	b := &Buffer{}
	b.pages.inline = newOwnedPage(0)
	return b
}

// Destroy releases every page's storage (firing unref hooks where set)
// and leaves the buffer empty. A destroyed buffer may still be used; it
// simply behaves like a freshly constructed one missing its initial
// inline page, which the next mutation restores.
func (b *Buffer) Destroy() {
	for _, p := range b.pages.all() {
		p.release()
	}
	b.pages.reset()
	b.contentLen = 0
}

// InitUnmanaged resets b to wrap caller-owned writable memory as its sole
// initial page (spec.md's init_unmanaged): buf is presented as free space,
// not live content, and is never reallocated or freed by the buffer.
// Any existing content is destroyed first.
func (b *Buffer) InitUnmanaged(buf []byte) {
	b.Destroy()
	b.pages.inline = newExternalPage(buf)
}

// SetChangedCB installs (or, with a nil cb, removes) the change
// notification callback (spec.md §4.8). Changes made before the call are
// not reported: the accumulated counts are cleared and the current
// content length becomes the origLen baseline.
func (b *Buffer) SetChangedCB(cb ChangeFunc) {
	b.notify.setCallback(cb)
	b.notify.added, b.notify.deleted = 0, 0
	b.notify.origLen = b.contentLen
}

// BeginCoalescing opens a nested section in which add/delete events are
// counted but not delivered; EndCoalescing on the matching 1->0 transition
// flushes one aggregated callback invocation.
func (b *Buffer) BeginCoalescing() {
	b.notify.beginCoalescing()
}

// EndCoalescing closes one nested coalescing section.
func (b *Buffer) EndCoalescing() {
	b.notify.endCoalescing(b.contentLen)
}

// Add appends data to the buffer's tail as owned, copied content,
// reserving and committing space as needed (spec.md's evbuffer_add).
func (b *Buffer) Add(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	iov, err := b.ReserveSpace(len(data))
	if err != nil {
		return err
	}
	n := copy(iov.Bytes, data)
	return b.CommitSpace(n)
}

// AddByte appends a single byte.
func (b *Buffer) AddByte(c byte) error {
	return b.Add([]byte{c})
}

// AddReadOnly appends buf as zero-copy, unmanaged, write-forbidden
// content: the buffer neither copies, frees, nor ever writes into buf.
func (b *Buffer) AddReadOnly(buf []byte) {
	if len(buf) == 0 {
		return
	}
	b.appendPages([]*page{newReadOnlyPage(buf)})
}

// AddReference appends buf as zero-copy, unmanaged content with a release
// hook: unref fires exactly once, when the buffer stops referencing buf
// (drain, destroy, or MoveTo handing ownership elsewhere skips it).
func (b *Buffer) AddReference(buf []byte, unref func(data []byte, userData any), userData any) {
	if len(buf) == 0 {
		return
	}
	b.appendPages([]*page{newReferencePage(buf, unref, userData)})
}

// AddPagebreak forces the next Add to start a fresh page rather than
// filling or growing the current tail page, by appending an empty owned
// page after it so later writes land in that new page. Nothing is
// appended when the tail holds no content. Used to keep a zero-copy
// boundary the caller has relied on (spec.md §4.3's mention of explicit
// page-break insertion).
func (b *Buffer) AddPagebreak() {
	p := b.pages.last()
	if p == nil || p.empty() {
		return
	}
	b.appendPages([]*page{newOwnedPage(0)})
}

// AddBuffer is spec.md's add_buffer(b, src): move all of src's content
// into b by splicing page descriptors (MoveAllTo from src's perspective).
func (b *Buffer) AddBuffer(src *Buffer) int {
	return src.MoveAllTo(b)
}

// Remove copies up to len(out) bytes from the buffer's head into out,
// draining the copied bytes, and returns the number of bytes copied.
func (b *Buffer) Remove(out []byte) int {
	n := len(out)
	if n > b.contentLen {
		n = b.contentLen
	}
	if n == 0 {
		return 0
	}
	off := 0
	for _, iov := range b.peekIovecs(0, n) {
		off += copy(out[off:], iov.Bytes)
	}
	b.Drain(n)
	return off
}

// RemoveString removes and returns the first n bytes of content as a
// string (copying), or the whole buffer if it holds fewer than n bytes.
func (b *Buffer) RemoveString(n int) string {
	if n > b.contentLen {
		n = b.contentLen
	}
	out := make([]byte, n)
	got := b.Remove(out)
	return string(out[:got])
}

// PeekString returns a copy of the first n bytes of content (or the
// whole buffer, if shorter) as a string, without draining it.
func (b *Buffer) PeekString(n int) string {
	if n > b.contentLen {
		n = b.contentLen
	}
	if n == 0 {
		return ""
	}
	out := make([]byte, 0, n)
	for _, iov := range b.peekIovecs(0, n) {
		out = append(out, iov.Bytes...)
	}
	return string(out)
}

// CopyOut copies up to len(dst) bytes of content starting at beginOffset
// into dst, without draining anything (spec.md §6's copyout). It returns
// the number of bytes actually copied, which is less than len(dst) if the
// buffer doesn't hold that much content past beginOffset.
func (b *Buffer) CopyOut(beginOffset int, dst []byte) int {
	if beginOffset < 0 || beginOffset >= b.contentLen || len(dst) == 0 {
		return 0
	}
	end := beginOffset + len(dst)
	if end > b.contentLen {
		end = b.contentLen
	}
	off := 0
	for _, iov := range b.peekIovecs(beginOffset, end) {
		off += copy(dst[off:], iov.Bytes)
	}
	return off
}
