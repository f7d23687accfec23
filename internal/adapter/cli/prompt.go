// Package cli implements the interactive command prompt over the ticket
// service.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmalx/tickethold/internal/core/domain"
	"github.com/dmalx/tickethold/internal/core/services"
	"github.com/dmalx/tickethold/internal/platform/validate"
)

const (
	cmdExit = iota
	cmdAvailability
	cmdHold
	cmdReserve
)

// Prompt is a line-oriented front end: it parses numeric input and checks
// email syntax, then delegates everything else to the service.
type Prompt struct {
	svc *services.TicketService
	in  *bufio.Scanner
	out io.Writer
}

func New(svc *services.TicketService, in io.Reader, out io.Writer) *Prompt {
	return &Prompt{svc: svc, in: bufio.NewScanner(in), out: out}
}

// Run drives the command loop until the user exits or input ends.
func (p *Prompt) Run() {
	fmt.Fprintln(p.out, "Welcome to the Ticket Service")
	fmt.Fprintln(p.out, "-----------------------------")
	fmt.Fprintln(p.out, "Command Options:")
	fmt.Fprintln(p.out, "0: to Exit")
	fmt.Fprintln(p.out, "1: to Get Total Remaining Seats Available")
	fmt.Fprintln(p.out, "2: to Hold Seats")
	fmt.Fprintln(p.out, "3: to Confirm Reservation")

	for {
		fmt.Fprint(p.out, "Please Enter a Command: ")
		line, ok := p.readLine()
		if !ok {
			return
		}

		command, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Not a valid command, please try again.")
			continue
		}

		switch command {
		case cmdExit:
			fmt.Fprintln(p.out, "Goodbye.")
			return
		case cmdAvailability:
			fmt.Fprintf(p.out, "Total remaining seats available are: %d\n", p.svc.NumSeatsAvailable())
		case cmdHold:
			p.holdSeats()
		case cmdReserve:
			p.confirmReservation()
		default:
			fmt.Fprintln(p.out, "Command not recognized.")
		}
	}
}

func (p *Prompt) holdSeats() {
	fmt.Fprint(p.out, "Please enter the number of seats you wish to hold? ")
	numSeats, ok := p.readInt("Not a valid number.")
	if !ok {
		return
	}

	email, ok := p.readEmail()
	if !ok {
		return
	}

	hold := p.svc.FindAndHoldSeats(numSeats, email)
	if hold.SeatCount() == numSeats {
		fmt.Fprintf(p.out, "Your hold id is: %d for seats %s\n", hold.ID, hold.DisplaySeats())
	} else {
		fmt.Fprintf(p.out, "Could not hold that many seats. Maximum seats available are: %d\n", p.svc.NumSeatsAvailable())
	}
}

func (p *Prompt) confirmReservation() {
	fmt.Fprint(p.out, "Confirm Reservation, please enter seat hold Id: ")
	holdID, ok := p.readInt("Not a valid hold Id.")
	if !ok {
		return
	}

	email, ok := p.readEmail()
	if !ok {
		return
	}

	reservation, err := p.svc.ReserveSeats(int64(holdID), email)
	if err != nil {
		fmt.Fprintln(p.out, renderReserveError(err, int64(holdID)))
		return
	}

	fmt.Fprintf(p.out, "Reservation code is %s for %s for seats: %s\n",
		reservation.Code, reservation.Email, strings.Join(reservation.SeatLabels, ", "))
}

func renderReserveError(err error, holdID int64) string {
	switch {
	case errors.Is(err, domain.ErrNoSuchHold):
		return fmt.Sprintf("No hold found with ID of %d", holdID)
	case errors.Is(err, domain.ErrAlreadyReserved):
		return "Reservation code has already been given."
	case errors.Is(err, domain.ErrHoldExpired):
		return "The hold has expired for the requested seats."
	case errors.Is(err, domain.ErrEmailMismatch):
		return "Customer Email either does not exist in our system or does not match up with hold Id."
	default:
		return err.Error()
	}
}

func (p *Prompt) readEmail() (string, bool) {
	fmt.Fprint(p.out, "Enter an email to confirm the hold: ")
	email, ok := p.readLine()
	if !ok {
		return "", false
	}
	if !validate.Email(email) {
		fmt.Fprintln(p.out, "Not a valid email.")
		return "", false
	}
	return email, true
}

func (p *Prompt) readInt(invalidMsg string) (int, bool) {
	line, ok := p.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(p.out, invalidMsg)
		return 0, false
	}
	return n, true
}

func (p *Prompt) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}
