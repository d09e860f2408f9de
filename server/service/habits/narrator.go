package habits

import (
	"fmt"
	"strings"
)

// buildRuleTexts renders the deterministic short and long summaries from
// statistics and suggestions. This requires no external call and cannot
// fail; it is the engine's guaranteed output floor.
func buildRuleTexts(days int, stats *PeriodStats, suggestions []string, t *texts) (string, string) {
	bestDay := BestDayNone
	if stats.BestDay >= 0 {
		bestDay = t.dayNames[stats.BestDay]
	}
	bestHour := hourText(stats.BestHour)

	onTimeLine := t.shortOnTimeNone
	if stats.DueDoneCount > 0 {
		onTimeLine = fmt.Sprintf(t.shortOnTime, stats.OnTimePercent, stats.OnTimeCount, stats.DueDoneCount)
	}

	shortLines := []string{
		fmt.Sprintf(t.shortHeader, days),
		fmt.Sprintf(t.shortDone, stats.DoneCount, stats.CreatedCount),
		onTimeLine,
		fmt.Sprintf(t.shortBestTime, bestDay, bestHour),
	}

	longOnTime := t.longOnTimeNone
	longOverdue := t.longOverdueNone
	if stats.DueDoneCount > 0 {
		longOnTime = fmt.Sprintf(t.longOnTime, stats.OnTimeCount, stats.DueDoneCount, stats.OnTimePercent)
		longOverdue = fmt.Sprintf(t.longOverdue, stats.OverdueCount, stats.DueDoneCount, stats.OverduePercent)
	}

	longLines := []string{
		fmt.Sprintf(t.longCreated, stats.CreatedCount),
		fmt.Sprintf(t.longDone, stats.DoneCount),
		longOnTime,
		longOverdue,
		fmt.Sprintf(t.longNoDue, stats.NoDueCount, stats.NoDueRate),
		fmt.Sprintf(t.longReminders, stats.ReminderHelpedCount, stats.ReminderHelpRate),
		fmt.Sprintf(t.longPeak, bestDay, bestHour),
		t.recommendations,
	}
	for _, tip := range suggestions {
		longLines = append(longLines, "• "+tip)
	}

	return strings.Join(shortLines, "\n"), strings.Join(longLines, "\n")
}
