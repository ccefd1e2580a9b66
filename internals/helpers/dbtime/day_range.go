package dbtime

import (
	"fmt"
	"strings"
	"time"

	"homework_backend/internals/configs"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// DayRange returns [start, end) of the calendar day containing t, in the app location.
func DayRange(t time.Time) (time.Time, time.Time) {
	loc := configs.Location()
	lt := t.In(loc)
	start := time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// DayKey formats t as YYYY-MM-DD in the app location.
func DayKey(t time.Time) string {
	return t.In(configs.Location()).Format(DateLayout)
}

// ParseDay accepts YYYY-MM-DD; empty means today.
func ParseDay(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		start, _ := DayRange(now)
		return start, nil
	}
	d, err := time.ParseInLocation(DateLayout, s, configs.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return d, nil
}

// MonthRange parses YYYY-MM (empty means the current month) and returns [start, end).
func MonthRange(s string, now time.Time) (time.Time, time.Time, error) {
	loc := configs.Location()
	s = strings.TrimSpace(s)
	var start time.Time
	if s == "" {
		lt := now.In(loc)
		start = time.Date(lt.Year(), lt.Month(), 1, 0, 0, 0, 0, loc)
	} else {
		m, err := time.ParseInLocation(MonthLayout, s, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("month must be YYYY-MM")
		}
		start = m
	}
	return start, start.AddDate(0, 1, 0), nil
}
