// Package timezone provides timezone utilities for the tasknest server.
//
// Resolution is total: any string resolves to a usable *time.Location, with
// UTC as the fallback for unknown or empty identifiers. Callers never need a
// fallback branch of their own.
package timezone

import (
	"time"
)

// LocationOrUTC resolves an IANA timezone identifier (e.g. "Europe/Moscow").
// Unknown or empty identifiers resolve to UTC.
func LocationOrUTC(tz string) *time.Location {
	if tz == "" || tz == "UTC" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsValid reports whether a timezone identifier is a known IANA name.
func IsValid(tz string) bool {
	if tz == "" || tz == "UTC" {
		return true
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// ToUserTimezone converts a Unix timestamp to the user's timezone.
func ToUserTimezone(ts int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(ts, 0).In(loc)
}

// Weekday returns the Monday-based weekday index (Mon=0 .. Sun=6) of t.
// time.Weekday is Sunday-based, which is the wrong bucket order for the
// habit histograms.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
