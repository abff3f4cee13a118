package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"taskbot/internal/db/task"
)

// updatableColumns guards the dynamic SET clause in UpdateField. Owner is
// deliberately absent: tasks never move between users.
var updatableColumns = map[string]struct{}{
	task.ColumnName:     {},
	task.ColumnDateEnd:  {},
	task.ColumnTimeEnd:  {},
	task.ColumnProgress: {},
	task.ColumnSchedule: {},
}

type Repository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func New(pool *pgxpool.Pool, log zerolog.Logger) *Repository {
	return &Repository{pool: pool, log: log}
}

func (r *Repository) Create(ctx context.Context, t task.Task) error {
	_, err := r.pool.Exec(ctx, insertQuery,
		t.Name, t.Owner, t.DateEnd, t.TimeEnd, t.Progress, t.Schedule)
	if err != nil {
		r.log.Error().Err(err).
			Str("task", t.Name).
			Str("owner", t.Owner).
			Msg("failed to insert task")
		return fmt.Errorf("insert task: %w", err)
	}
	r.log.Debug().
		Str("task", t.Name).
		Str("owner", t.Owner).
		Msg("inserted task")
	return nil
}

func (r *Repository) List(ctx context.Context, owner string) ([]task.Task, error) {
	query, args := selectAllQuery, []any{}
	if owner != "" {
		query, args = selectByOwnerQuery, []any{owner}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error().Err(err).Str("owner", owner).Msg("failed to select tasks")
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.Name, &t.Owner, &t.DateEnd, &t.TimeEnd, &t.Progress, &t.Schedule); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *Repository) UpdateField(ctx context.Context, name, owner, column, value string) (int64, error) {
	if _, ok := updatableColumns[column]; !ok {
		return 0, fmt.Errorf("column %q is not updatable", column)
	}

	tag, err := r.pool.Exec(ctx, fmt.Sprintf(updateFieldQuery, column), value, name, owner)
	if err != nil {
		r.log.Error().Err(err).
			Str("task", name).
			Str("owner", owner).
			Str("column", column).
			Msg("failed to update task")
		return 0, fmt.Errorf("update task: %w", err)
	}
	r.log.Debug().
		Str("task", name).
		Str("owner", owner).
		Str("column", column).
		Int64("rows", tag.RowsAffected()).
		Msg("updated task")
	return tag.RowsAffected(), nil
}

func (r *Repository) Delete(ctx context.Context, name, owner string) (bool, error) {
	tag, err := r.pool.Exec(ctx, deleteQuery, name, owner)
	if err != nil {
		r.log.Error().Err(err).
			Str("task", name).
			Str("owner", owner).
			Msg("failed to delete task")
		return false, fmt.Errorf("delete task: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
