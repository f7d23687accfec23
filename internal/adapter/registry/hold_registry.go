// Package registry provides the in-memory hold lookup table.
package registry

import (
	"sync"

	"github.com/dmalx/tickethold/internal/core/domain"
)

// HoldRegistry maps hold ids to hold records for the life of the process.
// Terminal holds are retained on purpose: they answer late ReserveSeats
// calls with the correct outcome instead of "no such hold".
type HoldRegistry struct {
	mu    sync.RWMutex
	holds map[int64]*domain.Hold
}

func New() *HoldRegistry {
	return &HoldRegistry{holds: make(map[int64]*domain.Hold)}
}

// Insert stores the hold by id.
func (r *HoldRegistry) Insert(hold *domain.Hold) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.holds[hold.ID] = hold
}

// Get returns the hold for id, or domain.ErrNoSuchHold.
func (r *HoldRegistry) Get(id int64) (*domain.Hold, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hold, ok := r.holds[id]
	if !ok {
		return nil, domain.ErrNoSuchHold
	}
	return hold, nil
}

// Len reports how many holds have been registered, terminal ones included.
func (r *HoldRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.holds)
}
