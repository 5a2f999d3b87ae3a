package util

import (
	"fmt"
	"strings"
	"time"
)

// Storage formats for calendar dates and clock times. Search and sort
// rely on lexicographic order of these strings matching chronological
// order, so every write must go through the normalizers below.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"02/01/2006",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
}

// NormalizeDate parses a caller-supplied calendar date and reformats it
// to YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(DateFormat), nil
		}
	}
	return "", fmt.Errorf("malformed date %q, expected YYYY-MM-DD", s)
}

// NormalizeTime parses a caller-supplied clock time and reformats it
// to HH:MM:SS.
func NormalizeTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(TimeFormat), nil
		}
	}
	return "", fmt.Errorf("malformed time %q, expected HH:MM:SS", s)
}

// Age returns the whole-year age for a YYYY-MM-DD date of birth at the
// given reference date. The year difference is reduced by one when the
// birthday has not yet occurred in the reference year.
func Age(dob string, now time.Time) (int, error) {
	d, err := time.Parse(DateFormat, dob)
	if err != nil {
		return 0, fmt.Errorf("malformed date of birth %q: %w", dob, err)
	}

	age := now.Year() - d.Year()
	if now.Month() < d.Month() || (now.Month() == d.Month() && now.Day() < d.Day()) {
		age--
	}
	return age, nil
}

// Today formats the reference date in storage form for date comparisons.
func Today(now time.Time) string {
	return now.Format(DateFormat)
}
