package habits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuggestionsZeroCompletions(t *testing.T) {
	en := textsFor("en")
	got := buildSuggestions(&PeriodStats{DoneCount: 0, BestDay: -1, BestHour: -1}, en)
	require.Equal(t, []string{en.tipStartSmall}, got)
}

func TestSuggestionsOverdueThreshold(t *testing.T) {
	en := textsFor("en")

	stats := &PeriodStats{DoneCount: 2, OverduePercent: 39, ReminderHelpRate: 100, BestDay: 0, BestHour: 9}
	require.NotContains(t, buildSuggestions(stats, en), en.tipEarlierDeadlines)

	stats.OverduePercent = 40
	require.Contains(t, buildSuggestions(stats, en), en.tipEarlierDeadlines)
}

func TestSuggestionsReminderRuleNeedsEnoughCompletions(t *testing.T) {
	en := textsFor("en")

	// Low help rate with too few completions stays quiet.
	stats := &PeriodStats{DoneCount: 4, ReminderHelpRate: 0, BestDay: 0, BestHour: 9}
	require.NotContains(t, buildSuggestions(stats, en), en.tipRemindersRarelyHelp)

	stats.DoneCount = 5
	require.Contains(t, buildSuggestions(stats, en), en.tipRemindersRarelyHelp)

	// A rate at the threshold does not fire.
	stats.ReminderHelpRate = 30
	require.NotContains(t, buildSuggestions(stats, en), en.tipRemindersRarelyHelp)
}

func TestSuggestionsNoDueThreshold(t *testing.T) {
	en := textsFor("en")

	stats := &PeriodStats{DoneCount: 2, ReminderHelpRate: 100, NoDueRate: 49, BestDay: 0, BestHour: 9}
	require.NotContains(t, buildSuggestions(stats, en), en.tipMostNoDeadline)

	stats.NoDueRate = 50
	require.Contains(t, buildSuggestions(stats, en), en.tipMostNoDeadline)
}

func TestSuggestionsBestTimeFormatting(t *testing.T) {
	stats := &PeriodStats{DoneCount: 3, ReminderHelpRate: 100, BestDay: 2, BestHour: 9}

	got := buildSuggestions(stats, textsFor("en"))
	require.Contains(t, got, "Your best time is Wed 09:00. Schedule important work then.")

	got = buildSuggestions(stats, textsFor("ru"))
	require.Contains(t, got, "Лучшее время — Ср 09:00. Планируй важное на этот слот.")
}

func TestSuggestionsPriorityOrder(t *testing.T) {
	en := textsFor("en")
	stats := &PeriodStats{
		DoneCount:        10,
		OverduePercent:   60,
		ReminderHelpRate: 0,
		NoDueRate:        80,
		BestDay:          0,
		BestHour:         22,
	}

	got := buildSuggestions(stats, en)
	require.Equal(t, []string{
		en.tipEarlierDeadlines,
		en.tipRemindersRarelyHelp,
		en.tipMostNoDeadline,
		"Your best time is Mon 22:00. Schedule important work then.",
	}, got)
}

func TestHourText(t *testing.T) {
	require.Equal(t, "09:00", hourText(9))
	require.Equal(t, "00:00", hourText(0))
	require.Equal(t, BestDayNone, hourText(-1))
}
