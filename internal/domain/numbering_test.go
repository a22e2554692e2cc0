package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRoomNumber(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		typeCode string
		floor    int
		seq      int
		want     string
	}{
		{
			name:     "standard room on first floor",
			prefix:   "CH",
			typeCode: "STD",
			floor:    1,
			seq:      3,
			want:     "CH-STD-01-003",
		},
		{
			name:     "lowercase type code is uppercased",
			prefix:   "CH",
			typeCode: "ste",
			floor:    2,
			seq:      1,
			want:     "CH-STE-02-001",
		},
		{
			name:     "double digit floor and triple digit sequence",
			prefix:   "CH",
			typeCode: "DLX",
			floor:    12,
			seq:      120,
			want:     "CH-DLX-12-120",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRoomNumber(tt.prefix, tt.typeCode, tt.floor, tt.seq))
		})
	}
}

func TestNextRoomSeq(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     int
	}{
		{
			name:     "no existing rooms",
			existing: nil,
			want:     1,
		},
		{
			name:     "continues after highest sequence",
			existing: []string{"CH-STD-01-001", "CH-STD-01-003", "CH-STD-01-002"},
			want:     4,
		},
		{
			name:     "ignores other floors and types",
			existing: []string{"CH-STD-02-005", "CH-DLX-01-007"},
			want:     1,
		},
		{
			name:     "malformed numbers are skipped",
			existing: []string{"CH-STD-01-abc", "CH-STD-01-", "101", "CH-STD-01-002"},
			want:     3,
		},
		{
			name:     "gaps are not reused",
			existing: []string{"CH-STD-01-001", "CH-STD-01-005"},
			want:     6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextRoomSeq("CH", "STD", 1, tt.existing))
		})
	}
}

func TestFormatReservationNumber(t *testing.T) {
	day := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, "RSV-20250601-001", FormatReservationNumber(day, 1))
	assert.Equal(t, "RSV-20250601-042", FormatReservationNumber(day, 42))
	assert.Equal(t, "RSV-20250601-100", FormatReservationNumber(day, 100))
}
