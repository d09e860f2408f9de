package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/tasknest/tasknest/store"
)

func (d *DB) CreateReminder(ctx context.Context, create *store.Reminder) (*store.Reminder, error) {
	stmt := `INSERT INTO reminder (task_id, notify_ts, sent)
		VALUES (` + placeholders(3) + `)
		RETURNING id`

	if err := d.db.QueryRowContext(ctx, stmt, create.TaskID, create.NotifyTs, create.Sent).Scan(&create.ID); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return create, nil
}

func (d *DB) ListReminders(ctx context.Context, find *store.FindReminder) ([]*store.Reminder, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "reminder.id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.TaskID; v != nil {
		where, args = append(where, "reminder.task_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if len(find.TaskIDs) > 0 {
		list := []string{}
		for _, id := range find.TaskIDs {
			list, args = append(list, placeholder(len(args)+1)), append(args, id)
		}
		where = append(where, "reminder.task_id IN ("+strings.Join(list, ", ")+")")
	}
	if v := find.Sent; v != nil {
		where, args = append(where, "reminder.sent = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `SELECT
			reminder.id,
			reminder.task_id,
			reminder.notify_ts,
			reminder.sent
		FROM reminder
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY reminder.id ASC`

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	defer rows.Close()

	list := []*store.Reminder{}
	for rows.Next() {
		reminder := &store.Reminder{}
		if err := rows.Scan(
			&reminder.ID,
			&reminder.TaskID,
			&reminder.NotifyTs,
			&reminder.Sent,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		list = append(list, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
