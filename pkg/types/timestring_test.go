package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid time", input: "14:00", wantErr: false},
		{name: "midnight", input: "00:00", wantErr: false},
		{name: "end of day", input: "23:59", wantErr: false},
		{name: "missing minutes", input: "14", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeStringComparisons(t *testing.T) {
	checkIn := TimeString("14:00")
	checkOut := TimeString("12:00")

	assert.True(t, checkOut.IsBefore(checkIn))
	assert.True(t, checkIn.IsAfter(checkOut))
	assert.False(t, checkIn.IsBefore(checkIn))
	assert.False(t, checkIn.IsAfter(checkIn))
}

func TestTimeStringAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		base    TimeString
		minutes int
		want    TimeString
	}{
		{name: "add within the hour", base: "14:00", minutes: 30, want: "14:30"},
		{name: "add across the hour", base: "14:45", minutes: 30, want: "15:15"},
		{name: "wrap past midnight", base: "23:30", minutes: 60, want: "00:30"},
		{name: "negative wraps backwards", base: "00:15", minutes: -30, want: "23:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.base.AddMinutes(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringAt(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:00").At(day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), got)

	_, err = TimeString("bad").At(day)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
