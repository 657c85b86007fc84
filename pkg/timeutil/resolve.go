// Package timeutil resolves the timestamp strings used by the arrival feeds
// into absolute instants. The feeds report civil time in JST and are not
// consistent about the shape: the Haneda feed mixes "2025/07/30 07:50:00"
// with the compact "202507300750", and the ODPT feed reports bare "07:50"
// clock times.
package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// JST is the fixed offset every upstream feed reports civil time in.
var JST = time.FixedZone("JST", 9*60*60)

// Resolve converts a full-date timestamp string into an absolute instant.
// Supported shapes are "YYYY/MM/DD HH:MM:SS" and the compact 12-digit
// "YYYYMMDDHHMM". Returns nil for empty or unrecognized input.
//
// Feed rows for late-night flights can carry the previous day's date
// relative to when the feed was fetched. When the resolved instant is more
// than 24 hours before now and the clock reads early morning (before
// 09:00), the instant is advanced by one day.
func Resolve(s string, now time.Time) *time.Time {
	if s == "" {
		return nil
	}

	var year, month, day, hour, minute int
	switch {
	case strings.ContainsRune(s, '/'):
		datePart, timePart, ok := strings.Cut(s, " ")
		if !ok {
			return nil
		}
		dateFields := strings.Split(datePart, "/")
		timeFields := strings.Split(timePart, ":")
		if len(dateFields) != 3 || len(timeFields) < 2 {
			return nil
		}
		var err error
		if year, err = strconv.Atoi(dateFields[0]); err != nil {
			return nil
		}
		if month, err = strconv.Atoi(dateFields[1]); err != nil {
			return nil
		}
		if day, err = strconv.Atoi(dateFields[2]); err != nil {
			return nil
		}
		if hour, err = strconv.Atoi(timeFields[0]); err != nil {
			return nil
		}
		if minute, err = strconv.Atoi(timeFields[1]); err != nil {
			return nil
		}
	case len(s) == 12:
		fields := make([]int, 5)
		for i, span := range [][2]int{{0, 4}, {4, 6}, {6, 8}, {8, 10}, {10, 12}} {
			n, err := strconv.Atoi(s[span[0]:span[1]])
			if err != nil {
				return nil
			}
			fields[i] = n
		}
		year, month, day, hour, minute = fields[0], fields[1], fields[2], fields[3], fields[4]
	default:
		return nil
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, JST)
	if t.Before(now.Add(-24*time.Hour)) && hour >= 0 && hour < 9 {
		t = t.AddDate(0, 0, 1)
	}
	return &t
}

// ResolveClock converts a bare "HH:MM" clock string into an absolute
// instant. The date comes from dateStr ("YYYY-MM-DD" or "YYYY/MM/DD") when
// supplied, otherwise from now's JST date. An instant that would land
// before now is taken to mean the next day.
//
// The rollover trigger here deliberately differs from Resolve's: the two
// feeds shaped their data differently and each rule matches its feed.
func ResolveClock(hhmm, dateStr string, now time.Time) *time.Time {
	if hhmm == "" {
		return nil
	}
	hourStr, minuteStr, ok := strings.Cut(hhmm, ":")
	if !ok {
		return nil
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return nil
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return nil
	}

	year, month, day, ok := parseDate(dateStr)
	if !ok {
		ref := now.In(JST)
		year, month, day = ref.Year(), int(ref.Month()), ref.Day()
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, JST)
	if t.Before(now) {
		t = t.AddDate(0, 0, 1)
	}
	return &t
}

func parseDate(s string) (year, month, day int, ok bool) {
	sep := "-"
	if strings.ContainsRune(s, '/') {
		sep = "/"
	}
	fields := strings.Split(s, sep)
	if len(fields) != 3 {
		return 0, 0, 0, false
	}
	var err error
	if year, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, 0, false
	}
	if month, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, 0, false
	}
	if day, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// ClockLabel slices the clock portion out of a raw feed timestamp for
// display: everything after the first space and before the last colon.
// "2025/07/30 07:50:00" becomes "07:50". A bare "HH:MM" is already a
// label and passes through; the compact 12-digit shape has no clock
// portion to slice and yields "". Labels are presentation only and are
// never compared or filtered on.
func ClockLabel(s string) string {
	if !strings.ContainsRune(s, ' ') && strings.Count(s, ":") == 1 {
		return s
	}
	start := strings.IndexByte(s, ' ') + 1
	end := strings.LastIndexByte(s, ':')
	if end < start {
		return ""
	}
	return s[start:end]
}
