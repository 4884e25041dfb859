package segbuf

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Buffer operations. Callers compare with
// errors.Is; nothing here carries a thread-local error code the way the
// C original does, since Go's error return already serves that purpose.
var (
	// ErrOutOfMemory is returned when the configured Allocator refuses to
	// grow or allocate a page. The buffer is left exactly as it was before
	// the call: content length and page count unchanged.
	ErrOutOfMemory = errors.New("segbuf: out of memory")

	// ErrShortRead is returned by fixed-width removals (netorder helpers)
	// when fewer bytes are available than requested. The buffer is
	// unchanged.
	ErrShortRead = errors.New("segbuf: short read")

	// ErrBadContract is the panic value for a caller-side contract
	// violation (CommitSpace beyond what was reserved, a middle-drain of
	// a non-writable page). It is recoverable via errors.Is on the panic
	// value, but is never returned as a normal error: per spec, these
	// indicate a bug in the caller, not a runtime condition.
	ErrBadContract = errors.New("segbuf: contract violation")
)

// contractViolation panics, matching the C source's debug-assert /
// release-abort treatment of programmer errors.
func contractViolation(msg string) {
	panic(fmt.Errorf("%w: %s", ErrBadContract, msg))
}
