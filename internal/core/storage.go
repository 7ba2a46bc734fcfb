package core

import (
	"context"
)

// UserDirectory is the keyed record store for identity records.
type UserDirectory interface {
	// Create inserts a new record unless one already exists for id.
	// Re-creating an existing identity is not an error: it returns
	// created=false and leaves the record unchanged.
	Create(ctx context.Context, id int64, name string, role Role) (created bool, err error)

	// Get returns the record for id or ErrUserNotFound.
	Get(ctx context.Context, id int64) (User, error)

	// Update applies the supplied fields and refreshes last_update.
	// Both values are validated before any write; an invalid value
	// leaves the record fully unchanged.
	Update(ctx context.Context, id int64, upd UserUpdate) error

	// HasRoleAndStatus reports whether a record exists for id with a
	// role in roles and exactly the given status. A missing record
	// yields false, not an error.
	HasRoleAndStatus(ctx context.Context, id int64, roles []Role, status Status) (bool, error)
}
