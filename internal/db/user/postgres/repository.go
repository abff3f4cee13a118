package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"taskbot/internal/db/user"
)

type Repository struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func New(pool *pgxpool.Pool, log zerolog.Logger) *Repository {
	return &Repository{pool: pool, log: log}
}

func (r *Repository) Create(ctx context.Context, u user.User) error {
	_, err := r.pool.Exec(ctx, insertQuery, u.Handle, u.Name, u.Note)
	if err != nil {
		r.log.Error().Err(err).Str("handle", u.Handle).Msg("failed to insert user")
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *Repository) Ensure(ctx context.Context, u user.User) (bool, error) {
	tag, err := r.pool.Exec(ctx, ensureQuery, u.Handle, u.Name, u.Note)
	if err != nil {
		r.log.Error().Err(err).Str("handle", u.Handle).Msg("failed to ensure user")
		return false, fmt.Errorf("ensure user: %w", err)
	}

	created := tag.RowsAffected() > 0
	r.log.Debug().
		Str("handle", u.Handle).
		Bool("created", created).
		Msg("ensured user")
	return created, nil
}

func (r *Repository) List(ctx context.Context, handle string) ([]user.User, error) {
	query, args := selectAllQuery, []any{}
	if handle != "" {
		query, args = selectByHandleQuery, []any{handle}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error().Err(err).Str("handle", handle).Msg("failed to select users")
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.Handle, &u.Name, &u.Note); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

func (r *Repository) Delete(ctx context.Context, handle string) (bool, error) {
	tag, err := r.pool.Exec(ctx, deleteQuery, handle)
	if err != nil {
		r.log.Error().Err(err).Str("handle", handle).Msg("failed to delete user")
		return false, fmt.Errorf("delete user: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
