package habits

import (
	"math"
	"time"

	"github.com/tasknest/tasknest/server/timezone"
)

// percent returns value/total as a whole percentage, rounded half-up.
// A zero or negative total yields 0, never a division error.
func percent(value, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(value)/float64(total)*100 + 0.5))
}

// argmax returns the first index achieving the maximum of counts.
// The fixed iteration order makes tie-breaking stable.
func argmax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

// Aggregate computes PeriodStats from the user's completed tasks.
//
// tasks are the DONE records with their reminders attached; records whose
// completion timestamp falls outside [now - days, now] are skipped, as are
// records without a completion timestamp at all. createdCount is supplied
// by the caller since it spans all statuses. Aggregation never fails:
// missing optional fields simply do not increment any bucket.
func Aggregate(tasks []*TaskReminders, createdCount int, loc *time.Location, now time.Time, days int) *PeriodStats {
	if loc == nil {
		loc = time.UTC
	}
	start := now.AddDate(0, 0, -days)

	stats := &PeriodStats{
		CreatedCount: createdCount,
		BestDay:      -1,
		BestHour:     -1,
	}

	for _, tr := range tasks {
		task := tr.Task
		if task.CompletedTs == nil {
			continue
		}
		completed := time.Unix(*task.CompletedTs, 0)
		if completed.Before(start) || completed.After(now) {
			continue
		}

		stats.DoneCount++
		local := completed.In(loc)
		stats.ByDay[timezone.Weekday(local)]++
		stats.ByHour[local.Hour()]++

		if task.DueTs != nil {
			stats.DueDoneCount++
			if *task.CompletedTs <= *task.DueTs {
				stats.OnTimeCount++
			} else {
				stats.OverdueCount++
			}
		} else {
			stats.NoDueCount++
		}

		helped := false
		for _, reminder := range tr.Reminders {
			if reminder.Sent && reminder.NotifyTs <= *task.CompletedTs {
				stats.RemindersSentBeforeDone++
				helped = true
			}
		}
		if helped {
			stats.ReminderHelpedCount++
		}
	}

	stats.OnTimePercent = percent(stats.OnTimeCount, stats.DueDoneCount)
	stats.OverduePercent = percent(stats.OverdueCount, stats.DueDoneCount)
	stats.ReminderHelpRate = percent(stats.ReminderHelpedCount, stats.DoneCount)
	stats.NoDueRate = percent(stats.NoDueCount, stats.DoneCount)

	if stats.DoneCount > 0 {
		stats.BestDay = argmax(stats.ByDay[:])
		stats.BestHour = argmax(stats.ByHour[:])
	}

	return stats
}
