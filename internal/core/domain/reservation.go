package domain

// Reservation is the successful, terminal outcome of confirming a hold.
type Reservation struct {
	Code       string   `json:"confirmation_code"`
	HoldID     int64    `json:"hold_id"`
	Email      string   `json:"email"`
	SeatLabels []string `json:"seats"`
}
