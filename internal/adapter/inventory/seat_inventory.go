// Package inventory keeps the unclaimed seats of a venue in a min-heap
// keyed by seat rank, so the best remaining seats are always allocated
// first.
package inventory

import (
	"container/heap"
	"sync"

	"github.com/dmalx/tickethold/internal/core/domain"
)

type seatHeap []domain.Seat

func (h seatHeap) Len() int            { return len(h) }
func (h seatHeap) Less(i, j int) bool  { return h[i].Rank < h[j].Rank }
func (h seatHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *seatHeap) Push(x interface{}) { *h = append(*h, x.(domain.Seat)) }

func (h *seatHeap) Pop() interface{} {
	old := *h
	n := len(old)
	seat := old[n-1]
	*h = old[:n-1]
	return seat
}

// SeatInventory is a mutex-guarded priority structure over the currently
// unclaimed seats. Every public method is a single critical section.
type SeatInventory struct {
	mu    sync.Mutex
	seats seatHeap
}

// New seeds the inventory with the full seat catalog.
func New(seats []domain.Seat) *SeatInventory {
	inv := &SeatInventory{seats: make(seatHeap, len(seats))}
	copy(inv.seats, seats)
	heap.Init(&inv.seats)
	return inv
}

// Available reports the current unclaimed seat count.
func (inv *SeatInventory) Available() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.seats)
}

// Allocate removes and returns the n lowest-rank seats. The count check and
// the removal happen under one lock, so concurrent callers can never split
// the same seat. When n exceeds the available count nothing is removed and
// domain.ErrInsufficientSeats is returned.
func (inv *SeatInventory) Allocate(n int) ([]domain.Seat, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if n > len(inv.seats) {
		return nil, domain.ErrInsufficientSeats
	}

	allocated := make([]domain.Seat, 0, n)
	for i := 0; i < n; i++ {
		allocated = append(allocated, heap.Pop(&inv.seats).(domain.Seat))
	}
	return allocated, nil
}

// Release reinserts a previously allocated seat set. Callers must only
// release seats they own, so a seat can never be present twice.
func (inv *SeatInventory) Release(seats []domain.Seat) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	for _, seat := range seats {
		heap.Push(&inv.seats, seat)
	}
}
