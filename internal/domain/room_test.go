package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomIsBookable(t *testing.T) {
	tests := []struct {
		status   RoomStatus
		bookable bool
	}{
		{RoomStatusFree, true},
		{RoomStatusOccupied, true},
		{RoomStatusMaintenance, true},
		{RoomStatusOutOfService, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			room := &Room{Status: tt.status}
			assert.Equal(t, tt.bookable, room.IsBookable())
		})
	}
}
