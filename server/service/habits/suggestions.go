package habits

import (
	"fmt"
)

// Suggestion thresholds, evaluated against PeriodStats.
const (
	overdueTipThreshold      = 40 // overdue percent at which earlier deadlines are suggested
	reminderHelpLowThreshold = 30 // reminder help rate below which the offset tip fires
	reminderHelpMinDone      = 5  // minimum completions before judging reminder efficacy
	noDueTipThreshold        = 50 // no-deadline rate at which the deadline tip fires
)

// buildSuggestions evaluates the threshold rules in fixed priority order.
// The rules are independent, except that zero completions short-circuits to
// the single "start small" tip. Deterministic for identical input.
func buildSuggestions(stats *PeriodStats, t *texts) []string {
	if stats.DoneCount == 0 {
		return []string{t.tipStartSmall}
	}

	suggestions := []string{}
	if stats.OverduePercent >= overdueTipThreshold {
		suggestions = append(suggestions, t.tipEarlierDeadlines)
	}
	if stats.ReminderHelpRate < reminderHelpLowThreshold && stats.DoneCount >= reminderHelpMinDone {
		suggestions = append(suggestions, t.tipRemindersRarelyHelp)
	}
	if stats.NoDueRate >= noDueTipThreshold {
		suggestions = append(suggestions, t.tipMostNoDeadline)
	}
	if stats.BestDay >= 0 && stats.BestHour >= 0 {
		suggestions = append(suggestions,
			fmt.Sprintf(t.tipBestTime, t.dayNames[stats.BestDay], hourText(stats.BestHour)))
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, t.tipKeepPace)
	}

	return suggestions
}

// hourText renders an hour bucket as "HH:00", or the sentinel for -1.
func hourText(hour int) string {
	if hour < 0 {
		return BestDayNone
	}
	return fmt.Sprintf("%02d:00", hour)
}
