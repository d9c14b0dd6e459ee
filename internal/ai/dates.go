package ai

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// spelledDate matches spelled-out Vietnamese dates like
// "ngày 5 tháng 12 năm 2024" (year optional).
var spelledDate = regexp.MustCompile(`ngày\s+(\d{1,2})\s+tháng\s+(\d{1,2})(?:\s+năm\s+(\d{4}))?`)

// NormalizeDate converts a date string from any of the accepted Vietnamese
// formats (YYYY-MM-DD, DD/MM/YYYY, DD-MM-YYYY, "ngày D tháng M năm Y") to
// YYYY-MM-DD. A date without a year defaults to the year of now. It returns
// "" when no date can be recognized; absent is preferred over a bad guess.
func NormalizeDate(s string, now time.Time) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "null" {
		return ""
	}

	if m := spelledDate.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		return formatDate(year, month, day)
	}

	sep := "/"
	if !strings.Contains(s, "/") && strings.Contains(s, "-") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	switch len(parts) {
	case 3:
		if len(parts[0]) == 4 {
			// Already YYYY-MM-DD (or YYYY/MM/DD).
			year, errY := strconv.Atoi(parts[0])
			month, errM := strconv.Atoi(parts[1])
			day, errD := strconv.Atoi(parts[2])
			if errY != nil || errM != nil || errD != nil {
				return ""
			}
			return formatDate(year, month, day)
		}
		day, errD := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[1])
		year, errY := strconv.Atoi(parts[2])
		if errY != nil || errM != nil || errD != nil {
			return ""
		}
		return formatDate(year, month, day)
	case 2:
		// Day and month only; the year defaults to the current one.
		day, errD := strconv.Atoi(parts[0])
		month, errM := strconv.Atoi(parts[1])
		if errD != nil || errM != nil {
			return ""
		}
		return formatDate(now.Year(), month, day)
	}

	return ""
}

// formatDate renders a calendar-valid date as YYYY-MM-DD, or "" when the
// components do not name a real day (time.Date would silently normalize
// 32/01 into February, which must be rejected instead).
func formatDate(year, month, day int) string {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return ""
	}
	return t.Format("2006-01-02")
}
