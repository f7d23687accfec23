package domain

import "errors"

var (
	ErrInvalidVenueDimensions = errors.New("venue rows and columns cannot be zero")
	ErrInsufficientSeats      = errors.New("not enough seats available")
)

var (
	ErrNoSuchHold      = errors.New("no hold found with that id")
	ErrAlreadyReserved = errors.New("reservation code has already been given")
	ErrHoldExpired     = errors.New("the hold has expired")
	ErrEmailMismatch   = errors.New("customer email does not match the hold")
)
