package service

import (
	"fmt"
	"time"
)

// BucketKeys identifies the day/week/month buckets one timestamp falls into.
type BucketKeys struct {
	Day   string
	Week  string
	Month string
}

const dayKeyLayout = "2006-01-02"

// Buckets derives the three bucket keys for a timestamp. The instant is used
// as provided, with no timezone conversion, so equal instants always produce
// equal keys.
//
// The week key follows a per-month rule, ceil((dayOfMonth-dayOfWeek+1)/7)
// with Sunday as day zero. It is deliberately not ISO-8601: week numbers
// restart inside each month and can collide across month boundaries. Kept
// for output parity with existing consumers of these keys.
func Buckets(t time.Time) BucketKeys {
	day := t.Day()
	weekday := int(t.Weekday())
	week := (day - weekday + 1 + 6) / 7

	return BucketKeys{
		Day:   t.Format(dayKeyLayout),
		Week:  fmt.Sprintf("%d-W%d", t.Year(), week),
		Month: t.Format("2006-01"),
	}
}

// DayKey returns only the calendar-day bucket key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}
