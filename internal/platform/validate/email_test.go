package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmalx/tickethold/internal/platform/validate"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "plain address", email: "alice@example.com", want: true},
		{name: "dotted local part", email: "first.last@example.co.uk", want: true},
		{name: "plus tag", email: "alice+tag@example.com", want: true},
		{name: "empty", email: "", want: false},
		{name: "missing domain", email: "alice@", want: false},
		{name: "missing at sign", email: "alice.example.com", want: false},
		{name: "missing tld", email: "alice@example", want: false},
		{name: "spaces", email: "alice @example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Email(tt.email))
		})
	}
}
