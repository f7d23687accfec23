package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/dmalx/tickethold/internal/core/domain"
	"github.com/dmalx/tickethold/internal/core/ports"
)

// TicketService drives the hold state machine over a fixed venue: it hands
// out the best available seats as time-bounded holds and turns unexpired
// holds into reservations. Expiration and reservation race per hold;
// exactly one of them wins via the hold's atomic state transition.
type TicketService struct {
	cols         int
	holdDuration time.Duration

	inventory ports.SeatInventory
	registry  ports.HoldRegistry
	scheduler ports.ExpirationScheduler

	lastHoldID atomic.Int64
}

// New builds a service for a rows×cols venue and seeds the inventory with
// the full seat catalog. Every hold created by this service uses the same
// holdDuration.
func New(rows, cols int, holdDuration time.Duration, inventory ports.SeatInventory, registry ports.HoldRegistry, scheduler ports.ExpirationScheduler) (*TicketService, error) {
	if rows == 0 || cols == 0 {
		return nil, domain.ErrInvalidVenueDimensions
	}

	inventory.Release(domain.BuildSeats(rows, cols))

	return &TicketService{
		cols:         cols,
		holdDuration: holdDuration,
		inventory:    inventory,
		registry:     registry,
		scheduler:    scheduler,
	}, nil
}

// NumSeatsAvailable reports the seats not owned by any active hold.
func (s *TicketService) NumSeatsAvailable() int {
	return s.inventory.Available()
}

// HoldDuration is the duration applied to every hold this service creates.
func (s *TicketService) HoldDuration() time.Duration {
	return s.holdDuration
}

// FindAndHoldSeats claims the numSeats best available seats for
// customerEmail. When the venue cannot satisfy the full request the
// returned hold has zero seats and the inventory is left untouched; callers
// detect failure through the seat count. The hold is registered and its
// expiration scheduled either way, matching the reference behavior.
func (s *TicketService) FindAndHoldSeats(numSeats int, customerEmail string) *domain.Hold {
	seats, err := s.inventory.Allocate(numSeats)
	if err != nil {
		logrus.Infof("Hold request for %d seats refused: %v", numSeats, err)
		seats = nil
	}

	hold := domain.NewHold(s.lastHoldID.Inc(), seats, customerEmail, s.holdDuration, s.cols)
	s.registry.Insert(hold)
	s.scheduler.Schedule(hold.ID, s.holdDuration, func() { s.expireHold(hold) })

	if hold.SeatCount() > 0 {
		logrus.WithFields(logrus.Fields{
			"hold_id": hold.ID,
			"seats":   hold.SeatCount(),
			"email":   customerEmail,
		}).Info("Seats held")
	}

	return hold
}

// ReserveSeats confirms the hold identified by holdID for customerEmail and
// issues a confirmation code. Failure modes are distinct and never merged:
// domain.ErrNoSuchHold, ErrAlreadyReserved, ErrHoldExpired, ErrEmailMismatch.
// A hold whose time has lapsed is treated as expired even if the expiration
// timer has not fired yet; the timer remains the mechanism that returns the
// seats to inventory.
func (s *TicketService) ReserveSeats(holdID int64, customerEmail string) (*domain.Reservation, error) {
	hold, err := s.registry.Get(holdID)
	if err != nil {
		return nil, err
	}

	switch {
	case hold.State() == domain.HoldReserved:
		return nil, domain.ErrAlreadyReserved
	case hold.State() == domain.HoldExpired || hold.RemainingTime() <= 0:
		return nil, domain.ErrHoldExpired
	case hold.Email != customerEmail:
		return nil, domain.ErrEmailMismatch
	}

	// Only one of reservation and expiration can win this transition.
	if !hold.MarkReserved() {
		return nil, domain.ErrHoldExpired
	}

	s.scheduler.Cancel(hold.ID)

	reservation := &domain.Reservation{
		Code:       uuid.New().String(),
		HoldID:     hold.ID,
		Email:      hold.Email,
		SeatLabels: hold.SeatLabels(),
	}

	logrus.WithFields(logrus.Fields{
		"hold_id": hold.ID,
		"code":    reservation.Code,
		"seats":   hold.SeatCount(),
	}).Info("Hold reserved")

	return reservation, nil
}

// expireHold is the scheduled expiration action. The state transition
// decides the race against ReserveSeats: seats go back to inventory only
// when this call moved the hold out of Active itself.
func (s *TicketService) expireHold(hold *domain.Hold) {
	if !hold.MarkExpired() {
		return
	}

	if hold.SeatCount() > 0 {
		s.inventory.Release(hold.Seats())
	}

	logrus.WithFields(logrus.Fields{
		"hold_id": hold.ID,
		"seats":   hold.SeatCount(),
	}).Info("Hold expired, seats released")
}
