package ports

import (
	"time"

	"github.com/dmalx/tickethold/internal/core/domain"
)

// SeatInventory holds the seats not currently owned by any active hold.
// Allocate and Release must each run as one atomic critical section: a
// caller may never observe a stale count relative to a concurrent removal.
type SeatInventory interface {
	// Available reports the current unclaimed seat count.
	Available() int

	// Allocate removes and returns exactly the n lowest-rank seats.
	// When fewer than n seats remain it removes nothing and returns
	// domain.ErrInsufficientSeats: callers get everything or nothing.
	Allocate(n int) ([]domain.Seat, error)

	// Release reinserts a seat set that was previously allocated.
	Release(seats []domain.Seat)
}

// HoldRegistry is the authoritative hold lookup table. Entries are kept for
// the life of the process, including terminal holds, as an audit trail.
type HoldRegistry interface {
	Insert(hold *domain.Hold)

	// Get returns the hold for id, or domain.ErrNoSuchHold.
	Get(id int64) (*domain.Hold, error)
}

// ExpirationScheduler fires one deferred action per hold. The action runs
// exactly once, d after Schedule, unless cancelled first.
type ExpirationScheduler interface {
	Schedule(holdID int64, d time.Duration, action func())

	// Cancel neutralizes the pending action for holdID if it has not fired.
	Cancel(holdID int64)

	// Stop cancels every pending action. Used on shutdown.
	Stop()
}
