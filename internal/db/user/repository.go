package user

import "context"

// User is one row of the users table. Handle maps to the tgteg column (the
// sender's chat handle), Note to the free-form userscol column.
type User struct {
	Handle string
	Name   *string
	Note   *string
}

type Repository interface {
	// Create inserts one row without checking for an existing handle.
	Create(ctx context.Context, u User) error
	// Ensure inserts the user unless the handle is already on file and
	// reports whether a row was created. It is a single statement, so
	// concurrent calls for the same handle cannot both insert.
	Ensure(ctx context.Context, u User) (bool, error)
	// List returns the user with the given handle, or every user when
	// handle is empty.
	List(ctx context.Context, handle string) ([]User, error)
	// Delete removes the user with the given handle and reports whether
	// any row matched. Tasks owned by the handle are left untouched.
	Delete(ctx context.Context, handle string) (bool, error)
}
