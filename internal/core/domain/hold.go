package domain

import (
	"strings"
	"time"

	"go.uber.org/atomic"
)

// HoldState is the lifecycle state of a Hold. Active is the initial state;
// Reserved and Expired are terminal and there is no transition between them.
type HoldState int32

const (
	HoldActive HoldState = iota
	HoldReserved
	HoldExpired
)

func (s HoldState) String() string {
	switch s {
	case HoldActive:
		return "ACTIVE"
	case HoldReserved:
		return "RESERVED"
	case HoldExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// Hold is a time-bounded claim on a fixed set of seats. The seat set and
// customer email never change after creation; only the state moves, and it
// moves exactly once, via a compare-and-set so that expiration and
// reservation cannot both win.
type Hold struct {
	ID        int64
	Email     string
	CreatedAt time.Time
	Duration  time.Duration

	seats  []Seat
	labels []string
	state  atomic.Int32
}

// NewHold builds a Hold over the given seats in Active state. Display labels
// are ordered once here, so every later read of the hold's seats is
// deterministic regardless of how the seat set was produced.
func NewHold(id int64, seats []Seat, email string, duration time.Duration, cols int) *Hold {
	owned := SortForDisplay(seats, cols)
	labels := make([]string, len(owned))
	for i, s := range owned {
		labels[i] = s.Label
	}
	return &Hold{
		ID:        id,
		Email:     email,
		CreatedAt: time.Now(),
		Duration:  duration,
		seats:     owned,
		labels:    labels,
	}
}

// Seats returns a copy of the held seat set.
func (h *Hold) Seats() []Seat {
	seats := make([]Seat, len(h.seats))
	copy(seats, h.seats)
	return seats
}

// SeatLabels returns the held seat labels in display order.
func (h *Hold) SeatLabels() []string {
	labels := make([]string, len(h.labels))
	copy(labels, h.labels)
	return labels
}

// DisplaySeats renders the held seats as a single customer-readable line,
// e.g. "A:1, A:2, A:3".
func (h *Hold) DisplaySeats() string {
	return strings.Join(h.labels, ", ")
}

// SeatCount reports how many seats the hold owns. A count of zero means the
// hold request could not be satisfied.
func (h *Hold) SeatCount() int {
	return len(h.seats)
}

// State returns the current lifecycle state.
func (h *Hold) State() HoldState {
	return HoldState(h.state.Load())
}

// Reserved reports whether the hold has been confirmed.
func (h *Hold) Reserved() bool {
	return h.State() == HoldReserved
}

// RemainingTime is how long the hold is still valid. A value <= 0 means the
// hold has lapsed even if the expiration timer has not fired yet.
func (h *Hold) RemainingTime() time.Duration {
	return h.Duration - time.Since(h.CreatedAt)
}

// MarkReserved attempts the Active→Reserved transition and reports whether
// this caller won it. A hold that is already terminal is left untouched.
func (h *Hold) MarkReserved() bool {
	return h.state.CompareAndSwap(int32(HoldActive), int32(HoldReserved))
}

// MarkExpired attempts the Active→Expired transition and reports whether
// this caller won it. Exactly one of MarkReserved/MarkExpired can ever
// succeed for a given hold.
func (h *Hold) MarkExpired() bool {
	return h.state.CompareAndSwap(int32(HoldActive), int32(HoldExpired))
}
