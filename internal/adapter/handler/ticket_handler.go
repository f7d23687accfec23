package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmalx/tickethold/internal/core/domain"
	"github.com/dmalx/tickethold/internal/core/services"
	"github.com/dmalx/tickethold/internal/platform/validate"
)

type TicketHandler struct {
	svc *services.TicketService
}

func NewTicketHandler(svc *services.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

type CreateHoldRequest struct {
	NumSeats int    `json:"num_seats"`
	Email    string `json:"email"`
}

type CreateHoldResponse struct {
	HoldID           int64    `json:"hold_id"`
	Seats            []string `json:"seats"`
	SeatCount        int      `json:"seat_count"`
	ExpiresInSeconds int64    `json:"expires_in_seconds"`
}

type ReserveRequest struct {
	HoldID int64  `json:"hold_id"`
	Email  string `json:"email"`
}

// GetAvailability reports the current unclaimed seat count.
func (h *TicketHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	json.NewEncoder(w).Encode(map[string]int{"available": h.svc.NumSeatsAvailable()})
}

// CreateHold places a hold on the best available seats. A request the venue
// cannot fully satisfy is refused with the current availability so the
// client can retry with a smaller count.
func (h *TicketHandler) CreateHold(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CreateHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if req.NumSeats <= 0 {
		writeError(w, http.StatusBadRequest, "num_seats must be positive")
		return
	}

	if !validate.Email(req.Email) {
		writeError(w, http.StatusBadRequest, "not a valid email")
		return
	}

	hold := h.svc.FindAndHoldSeats(req.NumSeats, req.Email)
	if hold.SeatCount() < req.NumSeats {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":     domain.ErrInsufficientSeats.Error(),
			"available": h.svc.NumSeatsAvailable(),
		})
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateHoldResponse{
		HoldID:           hold.ID,
		Seats:            hold.SeatLabels(),
		SeatCount:        hold.SeatCount(),
		ExpiresInSeconds: int64(hold.RemainingTime().Seconds()),
	})
}

// ReserveSeats confirms a hold and returns the confirmation code. Each
// failure mode keeps its own status so clients never have to parse message
// text.
func (h *TicketHandler) ReserveSeats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if !validate.Email(req.Email) {
		writeError(w, http.StatusBadRequest, "not a valid email")
		return
	}

	reservation, err := h.svc.ReserveSeats(req.HoldID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSuchHold):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrAlreadyReserved):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrHoldExpired):
			writeError(w, http.StatusGone, err.Error())
		case errors.Is(err, domain.ErrEmailMismatch):
			writeError(w, http.StatusForbidden, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	json.NewEncoder(w).Encode(reservation)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
