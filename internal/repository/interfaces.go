package repository

import (
	"context"

	"github.com/BrunaRochaL/violet-view/internal/model"
)

// UserStore persists registered accounts.
type UserStore interface {
	// Create inserts a new account after checking email uniqueness.  The
	// password is hashed with the given bcrypt cost before storage.
	// Returns ErrEmailExists when the email is already registered.
	Create(ctx context.Context, nome, senha, datNascimento, email string, cost int) (string, error)
	// GetByEmail returns ErrNotFound when no account has that email.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByID returns ErrInvalidID for malformed ids and ErrNotFound when
	// the id resolves to nothing.
	GetByID(ctx context.Context, id string) (*model.User, error)
	// Update replaces only the supplied fields.  Returns ErrInvalidID or
	// ErrNotFound when the id does not resolve to an account.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes the account.  Returns ErrInvalidID or ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// MovieStore reads the movie catalog.
type MovieStore interface {
	// List returns all catalog entries, or the entries whose name contains
	// nome (case-insensitive) when nome is non-empty.
	List(ctx context.Context, nome string) ([]model.Movie, error)
}

// AuditStore appends to and reads the audit trail.
type AuditStore interface {
	// Record appends one event.  Events are never mutated afterwards.
	Record(ctx context.Context, e model.AuditEvent) error
	// ListLogins joins every audit event to its account and returns the
	// flattened projection in natural storage order.
	ListLogins(ctx context.Context) ([]model.LoginRecord, error)
}
