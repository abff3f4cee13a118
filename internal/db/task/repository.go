package task

import "context"

// Column names of the task table. "prpgress" is a misspelling inherited from
// the store this bot has always run against; it must be kept verbatim.
const (
	ColumnName     = "name"
	ColumnOwner    = "users_tgteg"
	ColumnDateEnd  = "date_end"
	ColumnTimeEnd  = "time_end"
	ColumnProgress = "prpgress"
	ColumnSchedule = "schedulecol"
)

// Task is one row of the task table. A task is identified by (Name, Owner)
// by application convention only; the store itself does not enforce
// uniqueness, so duplicate rows are possible at this layer.
type Task struct {
	Name     string
	Owner    string
	DateEnd  *string
	TimeEnd  *string
	Progress *string
	Schedule *string
}

type Repository interface {
	// Create inserts one row. It performs no existence check.
	Create(ctx context.Context, t Task) error
	// List returns tasks owned by owner, or every task when owner is empty.
	List(ctx context.Context, owner string) ([]Task, error)
	// UpdateField sets a single column on the task identified by
	// (name, owner) and reports how many rows matched. Zero matches is
	// not an error at this layer.
	UpdateField(ctx context.Context, name, owner, column, value string) (int64, error)
	// Delete removes the task identified by (name, owner) and reports
	// whether any row matched.
	Delete(ctx context.Context, name, owner string) (bool, error)
}
