package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBooking(t *testing.T) {
	tests := []struct {
		name      string
		eventID   string
		email     string
		wantEmail string
		wantField string
		wantMsg   string
	}{
		{name: "valid", eventID: "ev-1", email: "user@example.com", wantEmail: "user@example.com"},
		{name: "email canonicalized", eventID: "ev-1", email: "  User@Example.COM ", wantEmail: "user@example.com"},
		{name: "missing event id", eventID: "", email: "user@example.com", wantField: "eventId", wantMsg: "eventId is required"},
		{name: "empty email", eventID: "ev-1", email: "   ", wantField: "email", wantMsg: "A valid email address is required"},
		{name: "malformed email", eventID: "ev-1", email: "not-a-valid-email", wantField: "email", wantMsg: "A valid email address is required"},
		{name: "missing domain dot", eventID: "ev-1", email: "user@example", wantField: "email", wantMsg: "A valid email address is required"},
		{name: "double at", eventID: "ev-1", email: "user@@example.com", wantField: "email", wantMsg: "A valid email address is required"},
		{name: "whitespace inside", eventID: "ev-1", email: "us er@example.com", wantField: "email", wantMsg: "A valid email address is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{EventID: tt.eventID, Email: tt.email}
			err := NormalizeBooking(b)
			if tt.wantField != "" {
				require.Error(t, err)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.wantField, ve.Field)
				assert.Equal(t, tt.wantMsg, ve.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, b.Email)
		})
	}
}
