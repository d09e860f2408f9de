package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocationOrUTC(t *testing.T) {
	tests := []struct {
		name string
		tz   string
		want string
	}{
		{"empty falls back to UTC", "", "UTC"},
		{"explicit UTC", "UTC", "UTC"},
		{"valid IANA name", "Europe/Moscow", "Europe/Moscow"},
		{"garbage falls back to UTC", "Mars/Olympus_Mons", "UTC"},
		{"abbreviation is not an IANA name", "MSK+3", "UTC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := LocationOrUTC(tt.tz)
			require.NotNil(t, loc)
			require.Equal(t, tt.want, loc.String())
		})
	}
}

func TestIsValid(t *testing.T) {
	require.True(t, IsValid(""))
	require.True(t, IsValid("UTC"))
	require.True(t, IsValid("Asia/Tokyo"))
	require.False(t, IsValid("Not/A_Zone"))
}

func TestToUserTimezone(t *testing.T) {
	// 2024-03-10 12:00:00 UTC
	ts := int64(1710072000)

	utc := ToUserTimezone(ts, time.UTC)
	require.Equal(t, 12, utc.Hour())

	moscow := ToUserTimezone(ts, LocationOrUTC("Europe/Moscow"))
	require.Equal(t, 15, moscow.Hour())

	// nil location behaves like UTC
	require.Equal(t, 12, ToUserTimezone(ts, nil).Hour())
}

func TestWeekday(t *testing.T) {
	// 2024-03-11 is a Monday
	monday := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	require.Equal(t, 0, Weekday(monday))

	sunday := monday.AddDate(0, 0, 6)
	require.Equal(t, 6, Weekday(sunday))
}
