package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatRoomNumber builds a room number from its components,
// e.g. FormatRoomNumber("CH", "STD", 1, 3) -> "CH-STD-01-003"
func FormatRoomNumber(prefix, typeCode string, floor, seq int) string {
	return fmt.Sprintf("%s-%s-%02d-%03d", prefix, strings.ToUpper(typeCode), floor, seq)
}

// NextRoomSeq returns the next free sequence number for the given
// prefix, type code and floor, scanning the existing room numbers.
// Numbers that do not match the expected shape are ignored
func NextRoomSeq(prefix, typeCode string, floor int, existing []string) int {
	wantPrefix := fmt.Sprintf("%s-%s-%02d-", prefix, strings.ToUpper(typeCode), floor)

	maxSeq := 0
	for _, number := range existing {
		if !strings.HasPrefix(number, wantPrefix) {
			continue
		}
		seqPart := strings.TrimPrefix(number, wantPrefix)
		seq, err := strconv.Atoi(seqPart)
		if err != nil || seq <= 0 {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}

// FormatReservationNumber builds a reservation number for the given day,
// e.g. FormatReservationNumber(day, 1) -> "RSV-20250601-001"
func FormatReservationNumber(day time.Time, seq int) string {
	return fmt.Sprintf("RSV-%s-%03d", day.Format(DayFormat), seq)
}
