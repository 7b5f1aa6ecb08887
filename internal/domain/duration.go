package domain

import (
	"regexp"
	"strconv"
)

var (
	isoHoursPattern   = regexp.MustCompile(`(\d+)H`)
	isoMinutesPattern = regexp.MustCompile(`(\d+)M`)
)

// ParseISODuration parses an ISO-8601-like duration token (e.g. "PT13H55M")
// into total minutes. Malformed or empty tokens yield 0; duration is a
// display concern, never a hard failure.
func ParseISODuration(s string) int {
	if len(s) < 2 || s[:2] != "PT" {
		return 0
	}

	var hours, minutes int
	if m := isoHoursPattern.FindStringSubmatch(s); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}
	if m := isoMinutesPattern.FindStringSubmatch(s); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}

	return hours*60 + minutes
}

// FormatMinutes formats a minute count as human text: "13h 55m", "2h"
// when the minutes divide evenly, "45m" under an hour.
func FormatMinutes(totalMinutes int) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return strconv.Itoa(hours) + "h " + strconv.Itoa(mins) + "m"
	case hours > 0:
		return strconv.Itoa(hours) + "h"
	default:
		return strconv.Itoa(mins) + "m"
	}
}
