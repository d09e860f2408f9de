package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/tasknest/tasknest/store"
)

func (d *DB) CreateTask(ctx context.Context, create *store.Task) (*store.Task, error) {
	fields := []string{"user_id", "title", "due_ts", "completed_ts"}
	args := []any{create.UserID, create.Title, create.DueTs, create.CompletedTs}

	if create.Status != "" {
		fields = append(fields, "status")
		args = append(args, string(create.Status))
	}
	if create.CreatedTs != 0 {
		fields = append(fields, "created_ts")
		args = append(args, create.CreatedTs)
	}

	stmt := `INSERT INTO task (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, status, created_ts, updated_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.Status,
		&create.CreatedTs,
		&create.UpdatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return create, nil
}

func taskWhere(find *store.FindTask) ([]string, []any) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "task.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UserID; v != nil {
		where, args = append(where, "task.user_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Status; v != nil {
		where, args = append(where, "task.status = "+placeholder(len(args)+1)), append(args, string(*v))
	}
	if v := find.CreatedTsAfter; v != nil {
		where, args = append(where, "task.created_ts >= "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CreatedTsBefore; v != nil {
		where, args = append(where, "task.created_ts <= "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CompletedTsAfter; v != nil {
		where, args = append(where, "task.completed_ts IS NOT NULL AND task.completed_ts >= "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.CompletedTsBefore; v != nil {
		where, args = append(where, "task.completed_ts IS NOT NULL AND task.completed_ts <= "+placeholder(len(args)+1)), append(args, *v)
	}

	return where, args
}

func (d *DB) ListTasks(ctx context.Context, find *store.FindTask) ([]*store.Task, error) {
	where, args := taskWhere(find)

	query := `SELECT
			task.id,
			task.user_id,
			task.created_ts,
			task.updated_ts,
			task.status,
			task.title,
			task.due_ts,
			task.completed_ts
		FROM task
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY task.id ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	list := []*store.Task{}
	for rows.Next() {
		task := &store.Task{}
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.CreatedTs,
			&task.UpdatedTs,
			&task.Status,
			&task.Title,
			&task.DueTs,
			&task.CompletedTs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		list = append(list, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (d *DB) CountTasks(ctx context.Context, find *store.FindTask) (int, error) {
	where, args := taskWhere(find)

	query := `SELECT COUNT(*) FROM task WHERE ` + strings.Join(where, " AND ")

	var count int
	if err := d.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return count, nil
}
