package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// LawnLabel is the shared label for overflow seats beyond the lettered rows.
// Lawn seats carry no per-seat number but remain distinct Seat values.
const LawnLabel = "Lawn"

// letteredRows is the number of rows that get a letter prefix before the
// venue overflows into lawn seating.
const letteredRows = 27

// Seat is an immutable venue seat. Rank is the allocation priority assigned
// at catalog build; lower rank is allocated first. Label is what the
// customer sees, e.g. "B:3" or "Lawn".
type Seat struct {
	Rank  int
	Label string
}

// BuildSeats creates the full seat catalog for a rows×cols venue in rank
// order. Within a row, seat numbers fan out from the middle so that rank
// order walks each row best seat first, and one row is exhausted before the
// next begins. Rows past the lettered range are all labelled "Lawn".
func BuildSeats(rows, cols int) []Seat {
	seats := make([]Seat, 0, rows*cols)
	rank := 0
	for row := 0; row < rows; row++ {
		letter := rowLetter(row)
		for col := 0; col < cols; col++ {
			label := LawnLabel
			if letter != LawnLabel {
				label = letter + ":" + strconv.Itoa(seatValue(col, cols))
			}
			seats = append(seats, Seat{Rank: rank, Label: label})
			rank++
		}
	}
	return seats
}

// rowLetter maps a row index to its letter, or "Lawn" past the lettered range.
func rowLetter(row int) string {
	if row < letteredRows {
		return string(rune('A' + row))
	}
	return LawnLabel
}

// seatValue computes the customer-facing seat number for a column index.
// Column 0 is the middle seat; subsequent columns alternate right and left
// of it, so a lower column index is always closer to center.
func seatValue(col, cols int) int {
	mid := int(math.Ceil(float64(cols) / 2))
	if col == 0 {
		return mid
	}
	if col%2 == 0 {
		return mid - col/2
	}
	return mid + (col+1)/2
}

// displayKey orders seats the way a customer reads them: row by row, seat
// number ascending within the row. Lawn seats sort after every lettered seat.
func displayKey(s Seat, cols int) int {
	head, num, ok := strings.Cut(s.Label, ":")
	if !ok {
		return math.MaxInt
	}
	value, err := strconv.Atoi(num)
	if err != nil {
		return math.MaxInt
	}
	return int(head[0])*cols + value
}

// SortForDisplay orders a seat set for presentation: ascending row-major
// display value, lawn seats last. Ties (all lawn seats share a label) are
// broken by rank so the output never depends on map iteration order.
func SortForDisplay(seats []Seat, cols int) []Seat {
	sorted := make([]Seat, len(seats))
	copy(sorted, seats)
	sort.Slice(sorted, func(i, j int) bool {
		ki, kj := displayKey(sorted[i], cols), displayKey(sorted[j], cols)
		if ki != kj {
			return ki < kj
		}
		return sorted[i].Rank < sorted[j].Rank
	})
	return sorted
}
