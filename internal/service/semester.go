package service

import (
	"fmt"
	"time"
)

// SemesterStart returns the most recent Feb 1 or Aug 1, midnight in loc, at or before now.
// January belongs to the semester that started on Aug 1 of the previous year.
func SemesterStart(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	year, month := now.Year(), now.Month()
	switch {
	case month >= time.August:
		return time.Date(year, time.August, 1, 0, 0, 0, 0, loc)
	case month >= time.February:
		return time.Date(year, time.February, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(year-1, time.August, 1, 0, 0, 0, 0, loc)
	}
}

// SemesterLabel names the semester starting at start, e.g. "2025.1"
func SemesterLabel(start time.Time) string {
	half := 1
	if start.Month() >= time.August {
		half = 2
	}
	return fmt.Sprintf("%d.%d", start.Year(), half)
}
