// Package habits computes behavioral statistics over a user's completed
// tasks and renders them as a narrative report.
//
// The pipeline is: aggregate → suggest → narrate, which always produces a
// complete rule-based report, followed by an optional LLM overlay that may
// replace the texts but can never fail the request. Every value in between
// is request-scoped; concurrent report computations share no state.
package habits

import (
	"time"

	"github.com/tasknest/tasknest/store"
)

const (
	// MinPeriodDays is the shortest accepted report period.
	MinPeriodDays = 7
	// DefaultPeriodDays is used when the caller does not specify a period.
	DefaultPeriodDays = 30
	// MaxPeriodDays is the longest accepted report period.
	MaxPeriodDays = 90
)

// BestDayNone is the sentinel pattern value when no tasks were completed.
const BestDayNone = "—"

// PeriodStats holds the aggregated statistics for one report period.
// It is created once per invocation and never mutated afterwards.
type PeriodStats struct {
	CreatedCount int
	DoneCount    int
	DueDoneCount int
	OnTimeCount  int
	OverdueCount int
	NoDueCount   int

	// ReminderHelpedCount is the number of completed tasks with at least
	// one sent reminder that fired before completion.
	ReminderHelpedCount int
	// RemindersSentBeforeDone counts every such reminder, not tasks.
	RemindersSentBeforeDone int

	// ByDay buckets completions by local weekday, Monday first.
	ByDay [7]int
	// ByHour buckets completions by local hour of day.
	ByHour [24]int

	// Derived rates, each in [0, 100], 0 when the denominator is 0.
	OnTimePercent    int
	OverduePercent   int
	ReminderHelpRate int
	NoDueRate        int

	// BestDay is the Monday-based weekday index with the most completions,
	// -1 when DoneCount is 0. Ties resolve to the first index.
	BestDay int
	// BestHour is the hour with the most completions, -1 when DoneCount is 0.
	BestHour int
}

// MetricCounts is the counts section of the metrics object.
type MetricCounts struct {
	Created                 int `json:"created"`
	Completed               int `json:"completed"`
	CompletedOnTime         int `json:"completed_on_time"`
	CompletedOverdue        int `json:"completed_overdue"`
	CompletedNoDue          int `json:"completed_no_due"`
	CompletedWithReminder   int `json:"completed_with_reminder"`
	RemindersSentBeforeDone int `json:"reminders_sent_before_done"`
}

// MetricPatterns is the patterns section of the metrics object.
type MetricPatterns struct {
	BestDay string `json:"best_day"`
	// BestHour is null when no tasks were completed in the period.
	BestHour *int `json:"best_hour"`
}

// MetricRates is the rates section of the metrics object.
type MetricRates struct {
	OnTimePercent    int `json:"on_time_percent"`
	OverduePercent   int `json:"overdue_percent"`
	ReminderHelpRate int `json:"reminder_help_rate"`
	NoDueRate        int `json:"no_due_rate"`
}

// Metrics is the machine-readable half of a habits report. Key names are a
// stable contract consumed by the bot frontend and embedded in the LLM prompt.
type Metrics struct {
	PeriodDays  int            `json:"period_days"`
	PeriodStart string         `json:"period_start"`
	PeriodEnd   string         `json:"period_end"`
	Counts      MetricCounts   `json:"counts"`
	Patterns    MetricPatterns `json:"patterns"`
	Rates       MetricRates    `json:"rates"`
	Suggestions []string       `json:"suggestions"`
}

// HabitsReport is the sole output of the engine. Immutable once built; the
// engine does not persist it.
type HabitsReport struct {
	ShortText string  `json:"short_text"`
	LongText  string  `json:"long_text"`
	Metrics   Metrics `json:"metrics"`
}

// ParsedFields carries whatever the response interpreter managed to recover
// from generated text. Any subset may be absent.
type ParsedFields struct {
	Short string
	Long  string
	Tips  []string
}

// Empty reports whether nothing was recovered.
func (f ParsedFields) Empty() bool {
	return f.Short == "" && f.Long == "" && len(f.Tips) == 0
}

// TaskReminders groups a completed task with its attached reminders.
type TaskReminders struct {
	Task      *store.Task
	Reminders []*store.Reminder
}

func buildMetrics(stats *PeriodStats, suggestions []string, days int, start, now time.Time, t *texts) Metrics {
	patterns := MetricPatterns{BestDay: BestDayNone}
	if stats.BestDay >= 0 {
		patterns.BestDay = t.dayNames[stats.BestDay]
	}
	if stats.BestHour >= 0 {
		hour := stats.BestHour
		patterns.BestHour = &hour
	}

	return Metrics{
		PeriodDays:  days,
		PeriodStart: start.UTC().Format(time.RFC3339),
		PeriodEnd:   now.UTC().Format(time.RFC3339),
		Counts: MetricCounts{
			Created:                 stats.CreatedCount,
			Completed:               stats.DoneCount,
			CompletedOnTime:         stats.OnTimeCount,
			CompletedOverdue:        stats.OverdueCount,
			CompletedNoDue:          stats.NoDueCount,
			CompletedWithReminder:   stats.ReminderHelpedCount,
			RemindersSentBeforeDone: stats.RemindersSentBeforeDone,
		},
		Patterns: patterns,
		Rates: MetricRates{
			OnTimePercent:    stats.OnTimePercent,
			OverduePercent:   stats.OverduePercent,
			ReminderHelpRate: stats.ReminderHelpRate,
			NoDueRate:        stats.NoDueRate,
		},
		Suggestions: suggestions,
	}
}
