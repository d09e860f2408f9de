package store

import (
	"context"
)

// Reminder is the object representing a task reminder.
type Reminder struct {
	ID     int32
	TaskID int32
	// NotifyTs is when the reminder should fire.
	NotifyTs int64
	// Sent marks reminders already delivered to the user.
	Sent bool
}

// FindReminder is the find condition for reminders.
type FindReminder struct {
	ID     *int32
	TaskID *int32
	// TaskIDs matches reminders attached to any of the given tasks.
	TaskIDs []int32
	Sent    *bool
}

// CreateReminder creates a new reminder.
func (s *Store) CreateReminder(ctx context.Context, create *Reminder) (*Reminder, error) {
	return s.driver.CreateReminder(ctx, create)
}

// ListReminders lists reminders with the find condition.
func (s *Store) ListReminders(ctx context.Context, find *FindReminder) ([]*Reminder, error) {
	return s.driver.ListReminders(ctx, find)
}
