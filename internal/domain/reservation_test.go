package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(day int, hour int) time.Time {
	return time.Date(2025, 6, day, hour, 0, 0, 0, time.UTC)
}

func TestReservationOverlaps(t *testing.T) {
	// Stay from June 10 14:00 to June 13 12:00
	res := &Reservation{
		Arrival:   date(10, 14),
		Departure: date(13, 12),
	}

	tests := []struct {
		name      string
		arrival   time.Time
		departure time.Time
		want      bool
	}{
		{
			name:      "identical interval overlaps",
			arrival:   date(10, 14),
			departure: date(13, 12),
			want:      true,
		},
		{
			name:      "contained interval overlaps",
			arrival:   date(11, 14),
			departure: date(12, 12),
			want:      true,
		},
		{
			name:      "overlap on the left edge",
			arrival:   date(8, 14),
			departure: date(11, 12),
			want:      true,
		},
		{
			name:      "overlap on the right edge",
			arrival:   date(12, 14),
			departure: date(15, 12),
			want:      true,
		},
		{
			name:      "back to back before does not overlap",
			arrival:   date(8, 14),
			departure: date(10, 14),
			want:      false,
		},
		{
			name:      "back to back after does not overlap",
			arrival:   date(13, 12),
			departure: date(15, 12),
			want:      false,
		},
		{
			name:      "fully before does not overlap",
			arrival:   date(1, 14),
			departure: date(5, 12),
			want:      false,
		},
		{
			name:      "fully after does not overlap",
			arrival:   date(20, 14),
			departure: date(25, 12),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, res.Overlaps(tt.arrival, tt.departure))
		})
	}
}

func TestReservationStatusTransitions(t *testing.T) {
	tests := []struct {
		status      ReservationStatus
		blocks      bool
		canCancel   bool
		canCheckIn  bool
		canCheckOut bool
		active      bool
	}{
		{StatusConfirmed, true, true, true, false, true},
		{StatusInProgress, true, true, false, true, true},
		{StatusCompleted, false, false, false, false, true},
		{StatusCancelled, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			res := &Reservation{Status: tt.status}
			assert.Equal(t, tt.blocks, res.BlocksInterval())
			assert.Equal(t, tt.canCancel, res.CanBeCancelled())
			assert.Equal(t, tt.canCheckIn, res.CanCheckIn())
			assert.Equal(t, tt.canCheckOut, res.CanCheckOut())
			assert.Equal(t, tt.active, res.IsActive())
		})
	}
}

func TestClientFullName(t *testing.T) {
	res := &Reservation{ClientFirstName: "Awa", ClientLastName: "Ndiaye"}
	assert.Equal(t, "Awa Ndiaye", res.ClientFullName())

	res = &Reservation{ClientFirstName: "Awa"}
	assert.Equal(t, "Awa", res.ClientFullName())
}
