package book_reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouleymatou/HMS-ReservationService/pkg/ptr"
	"github.com/ouleymatou/HMS-ReservationService/pkg/types"
)

func validRequest() *Request {
	return &Request{
		RoomID:          1,
		ClientFirstName: "Awa",
		ClientLastName:  "Ndiaye",
		ClientPhone:     "771234567",
		ClientEmail:     ptr.Ptr("awa.ndiaye@example.sn"),
		Arrival:         time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Departure:       time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		PartySize:       2,
		Deposit:         50000,
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr bool
	}{
		{
			name:    "valid request",
			mutate:  func(req *Request) {},
			wantErr: false,
		},
		{
			name:    "name with accents and hyphen",
			mutate:  func(req *Request) { req.ClientFirstName = "Aïssatou-Béa" },
			wantErr: false,
		},
		{
			name:    "name with apostrophe",
			mutate:  func(req *Request) { req.ClientLastName = "N'Diaye" },
			wantErr: false,
		},
		{
			name:    "single letter name is too short",
			mutate:  func(req *Request) { req.ClientFirstName = "A" },
			wantErr: true,
		},
		{
			name:    "name with digits",
			mutate:  func(req *Request) { req.ClientLastName = "Ndiaye2" },
			wantErr: true,
		},
		{
			name:    "phone with operator prefix 70",
			mutate:  func(req *Request) { req.ClientPhone = "709876543" },
			wantErr: false,
		},
		{
			name:    "phone with unknown prefix",
			mutate:  func(req *Request) { req.ClientPhone = "791234567" },
			wantErr: true,
		},
		{
			name:    "phone too short",
			mutate:  func(req *Request) { req.ClientPhone = "77123456" },
			wantErr: true,
		},
		{
			name:    "phone too long",
			mutate:  func(req *Request) { req.ClientPhone = "7712345678" },
			wantErr: true,
		},
		{
			name:    "missing email is allowed",
			mutate:  func(req *Request) { req.ClientEmail = nil },
			wantErr: false,
		},
		{
			name:    "invalid email",
			mutate:  func(req *Request) { req.ClientEmail = ptr.Ptr("not-an-email") },
			wantErr: true,
		},
		{
			name:    "zero room id",
			mutate:  func(req *Request) { req.RoomID = 0 },
			wantErr: true,
		},
		{
			name:    "missing arrival",
			mutate:  func(req *Request) { req.Arrival = time.Time{} },
			wantErr: true,
		},
		{
			name:    "missing departure",
			mutate:  func(req *Request) { req.Departure = time.Time{} },
			wantErr: true,
		},
		{
			name:    "zero party size",
			mutate:  func(req *Request) { req.PartySize = 0 },
			wantErr: true,
		},
		{
			name:    "negative deposit",
			mutate:  func(req *Request) { req.Deposit = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeStayTime(t *testing.T) {
	checkIn := types.TimeString("14:00")

	t.Run("midnight gets the policy time", func(t *testing.T) {
		arrival := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		got, err := normalizeStayTime(arrival, checkIn)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), got)
	})

	t.Run("explicit time is kept", func(t *testing.T) {
		arrival := time.Date(2025, 6, 10, 16, 30, 0, 0, time.UTC)

		got, err := normalizeStayTime(arrival, checkIn)
		require.NoError(t, err)
		assert.Equal(t, arrival, got)
	})
}

func TestValidateStayInterval(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		arrival   time.Time
		departure time.Time
		wantErr   error
	}{
		{
			name:      "valid future stay",
			arrival:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
			departure: time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC),
			wantErr:   nil,
		},
		{
			name:      "arrival in the past",
			arrival:   time.Date(2025, 5, 30, 14, 0, 0, 0, time.UTC),
			departure: time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC),
			wantErr:   ErrArrivalInPast,
		},
		{
			name:      "departure equals arrival",
			arrival:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
			departure: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
			wantErr:   ErrDepartureBeforeArrival,
		},
		{
			name:      "departure before arrival",
			arrival:   time.Date(2025, 6, 13, 14, 0, 0, 0, time.UTC),
			departure: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
			wantErr:   ErrDepartureBeforeArrival,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStayInterval(tt.arrival, tt.departure, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCountNights(t *testing.T) {
	tests := []struct {
		name      string
		arrival   time.Time
		departure time.Time
		want      int
	}{
		{
			name:      "three nights",
			arrival:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
			departure: time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC),
			want:      3,
		},
		{
			name:      "one night despite early departure hour",
			arrival:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
			departure: time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC),
			want:      1,
		},
		{
			name:      "same day stay counts one night",
			arrival:   time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
			departure: time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC),
			want:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countNights(tt.arrival, tt.departure))
		})
	}
}

func TestValidateDeposit(t *testing.T) {
	const totalPrice = 100000.0

	tests := []struct {
		name    string
		deposit float64
		wantErr bool
	}{
		{name: "minimum boundary", deposit: 30000, wantErr: false},
		{name: "maximum boundary", deposit: 100000, wantErr: false},
		{name: "middle of the range", deposit: 50000, wantErr: false},
		{name: "below minimum", deposit: 29999, wantErr: true},
		{name: "above maximum", deposit: 100001, wantErr: true},
		{name: "zero deposit", deposit: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDeposit(tt.deposit, totalPrice)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrDepositOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
