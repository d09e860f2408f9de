package store

import (
	"context"
)

// TaskStatus is the lifecycle status of a task.
type TaskStatus string

const (
	// TaskStatusPending is a task not yet completed.
	TaskStatusPending TaskStatus = "PENDING"
	// TaskStatusDone is a completed task.
	TaskStatusDone TaskStatus = "DONE"
	// TaskStatusCanceled is a canceled task.
	TaskStatusCanceled TaskStatus = "CANCELED"
)

// Task is the object representing a user task. The report engine treats
// tasks as read-only; their lifecycle is owned by the bot backend.
type Task struct {
	ID        int32
	UserID    int32
	CreatedTs int64
	UpdatedTs int64

	Status TaskStatus
	Title  string
	// DueTs is the optional deadline.
	DueTs *int64
	// CompletedTs is set when the task transitions to DONE.
	CompletedTs *int64
}

// FindTask is the find condition for tasks.
type FindTask struct {
	ID     *int32
	UserID *int32
	Status *TaskStatus

	// Created window bounds, inclusive.
	CreatedTsAfter  *int64
	CreatedTsBefore *int64

	// Completed window bounds, inclusive. Matching requires a non-null
	// completed_ts.
	CompletedTsAfter  *int64
	CompletedTsBefore *int64
}

// CreateTask creates a new task.
func (s *Store) CreateTask(ctx context.Context, create *Task) (*Task, error) {
	return s.driver.CreateTask(ctx, create)
}

// ListTasks lists tasks with the find condition.
func (s *Store) ListTasks(ctx context.Context, find *FindTask) ([]*Task, error) {
	return s.driver.ListTasks(ctx, find)
}

// CountTasks counts tasks with the find condition.
func (s *Store) CountTasks(ctx context.Context, find *FindTask) (int, error) {
	return s.driver.CountTasks(ctx, find)
}
