package cron

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	timeOfDayRe = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)`)
	everyNRe    = regexp.MustCompile(`every\s+(\d+)\s+(hour|minute)s?`)
)

// FromHint maps a human schedule phrase to a cron expression on a
// best-effort basis. The second return value is false when no translation
// applies; callers must treat that as "no suggestion available", never as
// an error.
func FromHint(phrase string) (string, bool) {
	p := strings.ToLower(phrase)

	switch {
	case strings.Contains(p, "hourly"):
		return "0 * * * *", true

	case strings.Contains(p, "daily"):
		if hour, minute, ok := extractTimeOfDay(p); ok {
			return fmt.Sprintf("%d %d * * *", minute, hour), true
		}
		return "0 9 * * *", true

	case strings.Contains(p, "weekly"):
		return "0 9 * * 1", true

	case strings.Contains(p, "monthly"):
		return "0 9 1 * *", true
	}

	if m := everyNRe.FindStringSubmatch(p); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n > 0 {
			if m[2] == "hour" {
				return fmt.Sprintf("0 */%d * * *", n), true
			}
			return fmt.Sprintf("*/%d * * * *", n), true
		}
	}

	return "", false
}

// extractTimeOfDay finds an "H:MM am/pm" token and converts it to 24-hour
// time. pm adds 12 unless the hour is already 12; 12am maps to 0.
func extractTimeOfDay(phrase string) (hour, minute int, ok bool) {
	m := timeOfDayRe.FindStringSubmatch(phrase)
	if m == nil {
		return 0, 0, false
	}

	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour > 12 || minute > 59 {
		return 0, 0, false
	}

	if m[3] == "pm" && hour != 12 {
		hour += 12
	}
	if m[3] == "am" && hour == 12 {
		hour = 0
	}
	return hour, minute, true
}
