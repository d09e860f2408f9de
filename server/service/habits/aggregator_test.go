package habits

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tasknest/tasknest/store"
)

func int64Ptr(v int64) *int64 { return &v }

func completedTask(id int32, completedTs int64, dueTs *int64) *TaskReminders {
	return &TaskReminders{
		Task: &store.Task{
			ID:          id,
			Status:      store.TaskStatusDone,
			CompletedTs: int64Ptr(completedTs),
			DueTs:       dueTs,
		},
	}
}

func TestPercentHalfUpRounding(t *testing.T) {
	require.Equal(t, 0, percent(0, 0))
	require.Equal(t, 0, percent(5, 0))
	require.Equal(t, 0, percent(5, -1))
	require.Equal(t, 50, percent(1, 2))
	require.Equal(t, 33, percent(1, 3))
	require.Equal(t, 67, percent(2, 3))
	// .5 rounds up, not to even.
	require.Equal(t, 13, percent(1, 8))
	require.Equal(t, 38, percent(3, 8))
	require.Equal(t, 100, percent(7, 7))
}

func TestArgmaxFirstIndexWins(t *testing.T) {
	require.Equal(t, 0, argmax([]int{0, 0, 0}))
	require.Equal(t, 2, argmax([]int{1, 3, 5, 2}))
	require.Equal(t, 1, argmax([]int{0, 4, 4, 4}))
}

func TestAggregateDueAndNoDueMix(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	base := now.AddDate(0, 0, -3).Unix()

	tasks := []*TaskReminders{}
	// Six tasks with a due timestamp, all met on time.
	for i := 0; i < 6; i++ {
		ts := base + int64(i)*3600
		tasks = append(tasks, completedTask(int32(i+1), ts, int64Ptr(ts+600)))
	}
	// Four without a due timestamp.
	for i := 0; i < 4; i++ {
		tasks = append(tasks, completedTask(int32(i+7), base+int64(i)*60, nil))
	}

	stats := Aggregate(tasks, 12, time.UTC, now, 30)

	require.Equal(t, 12, stats.CreatedCount)
	require.Equal(t, 10, stats.DoneCount)
	require.Equal(t, 6, stats.DueDoneCount)
	require.Equal(t, 6, stats.OnTimeCount)
	require.Equal(t, 0, stats.OverdueCount)
	require.Equal(t, 4, stats.NoDueCount)
	require.Equal(t, 100, stats.OnTimePercent)
	require.Equal(t, 0, stats.OverduePercent)
	require.Equal(t, 40, stats.NoDueRate)
	require.Equal(t, 0, stats.ReminderHelpRate)
}

func TestAggregateEmpty(t *testing.T) {
	now := time.Now()
	stats := Aggregate(nil, 0, time.UTC, now, 30)

	require.Equal(t, 0, stats.DoneCount)
	require.Equal(t, -1, stats.BestDay)
	require.Equal(t, -1, stats.BestHour)
	require.Equal(t, 0, stats.OnTimePercent)
	require.Equal(t, 0, stats.NoDueRate)
}

func TestAggregateSkipsOutsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tasks := []*TaskReminders{
		completedTask(1, now.AddDate(0, 0, -31).Unix(), nil), // before window
		completedTask(2, now.Add(time.Hour).Unix(), nil),     // after now
		completedTask(3, now.AddDate(0, 0, -1).Unix(), nil),  // inside
		{Task: &store.Task{ID: 4, Status: store.TaskStatusDone}}, // no completion ts
	}

	stats := Aggregate(tasks, 4, time.UTC, now, 30)
	require.Equal(t, 1, stats.DoneCount)
	require.Equal(t, 4, stats.CreatedCount)
}

func TestAggregateOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	completed := now.AddDate(0, 0, -2).Unix()

	tasks := []*TaskReminders{
		completedTask(1, completed, int64Ptr(completed-3600)), // late
		completedTask(2, completed, int64Ptr(completed)),      // exactly on the due ts counts as on time
		completedTask(3, completed, int64Ptr(completed+3600)), // early
	}

	stats := Aggregate(tasks, 3, time.UTC, now, 30)
	require.Equal(t, 3, stats.DueDoneCount)
	require.Equal(t, 2, stats.OnTimeCount)
	require.Equal(t, 1, stats.OverdueCount)
	require.Equal(t, 67, stats.OnTimePercent)
	require.Equal(t, 33, stats.OverduePercent)
}

func TestAggregateReminderCounts(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	completed := now.AddDate(0, 0, -2).Unix()

	tasks := []*TaskReminders{
		{
			Task: &store.Task{ID: 1, Status: store.TaskStatusDone, CompletedTs: int64Ptr(completed)},
			Reminders: []*store.Reminder{
				{ID: 1, TaskID: 1, NotifyTs: completed - 3600, Sent: true},
				{ID: 2, TaskID: 1, NotifyTs: completed - 1800, Sent: true},
				{ID: 3, TaskID: 1, NotifyTs: completed + 3600, Sent: true},  // after completion
				{ID: 4, TaskID: 1, NotifyTs: completed - 600, Sent: false}, // never sent
			},
		},
		completedTask(2, completed, nil),
	}

	stats := Aggregate(tasks, 2, time.UTC, now, 30)
	// Two reminders fired before completion, on one task.
	require.Equal(t, 2, stats.RemindersSentBeforeDone)
	require.Equal(t, 1, stats.ReminderHelpedCount)
	require.Equal(t, 50, stats.ReminderHelpRate)
}

func TestAggregateBucketsInUserTimezone(t *testing.T) {
	// 2026-03-16 is a Monday. 01:30 UTC is still Sunday evening in New York.
	completed := time.Date(2026, 3, 16, 1, 30, 0, 0, time.UTC)
	now := completed.Add(24 * time.Hour)
	tasks := []*TaskReminders{completedTask(1, completed.Unix(), nil)}

	utcStats := Aggregate(tasks, 1, time.UTC, now, 30)
	require.Equal(t, 0, utcStats.BestDay) // Monday
	require.Equal(t, 1, utcStats.BestHour)

	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	nyStats := Aggregate(tasks, 1, ny, now, 30)
	require.Equal(t, 6, nyStats.BestDay) // Sunday
	require.Equal(t, 21, nyStats.BestHour)
}

func TestAggregateDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	base := now.AddDate(0, 0, -5).Unix()
	tasks := []*TaskReminders{
		completedTask(1, base, int64Ptr(base+60)),
		completedTask(2, base+7200, nil),
		completedTask(3, base+86400, int64Ptr(base)),
	}

	first := Aggregate(tasks, 5, time.UTC, now, 30)
	second := Aggregate(tasks, 5, time.UTC, now, 30)
	require.Equal(t, first, second)
}

func TestAggregateNilLocationFallsBackToUTC(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tasks := []*TaskReminders{completedTask(1, now.AddDate(0, 0, -1).Unix(), nil)}

	stats := Aggregate(tasks, 1, nil, now, 30)
	require.Equal(t, 1, stats.DoneCount)
}
