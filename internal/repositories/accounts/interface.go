// Package accounts persists account registry rows (everything except the
// credential, which lives in the secret store).
package accounts

import "context"

// Record is one durable registry row. Position defines display order;
// positions may gap after removals.
type Record struct {
	ID       string
	Domain   string
	Name     string
	Email    string
	Avatar   string
	Position int
}

type Repository interface {
	// List returns all rows ordered by position.
	List(ctx context.Context) ([]Record, error)

	// Insert appends a row at the next free position.
	Insert(ctx context.Context, rec Record) error

	// Delete removes the row with the given id. Deleting a missing id is
	// not an error.
	Delete(ctx context.Context, id string) error

	// UpdateProfile refreshes display metadata for an existing row.
	UpdateProfile(ctx context.Context, id, name, email, avatar string) error
}
