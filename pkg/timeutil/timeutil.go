package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// DateLayout is the canonical date-string format used across schedule documents.
const DateLayout = "2006-01-02"

// TimeToMinutes converts an "HH:MM" string to minutes since midnight.
// Values are not range-checked; out-of-range components propagate arithmetically.
func TimeToMinutes(s string) int {
	hh, mm, _ := strings.Cut(s, ":")
	hours, _ := strconv.Atoi(hh)
	minutes, _ := strconv.Atoi(mm)
	return hours*60 + minutes
}

// MinutesToTimeString formats minutes since midnight as a clock string.
// In 12-hour mode both hour 0 and hour 12 render as "12".
func MinutesToTimeString(minutes int, twelveHour bool) string {
	hours := minutes / 60
	mins := minutes % 60

	if !twelveHour {
		return fmt.Sprintf("%02d:%02d", hours, mins)
	}

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, mins, period)
}
