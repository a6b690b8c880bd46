package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers (sqlite, postgres, mongo,
// memory) implement it and expose one sub-repository per record kind.
type Store interface {
	Admins() Admins
	Contacts() Contacts

	// ApplyMigrations brings the schema (or indexes) up to date.
	ApplyMigrations(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backend is still reachable.
	Ping(ctx context.Context) error
}

type Admins interface {
	// GetAdminByUsername is an exact, case-sensitive lookup.
	GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error)

	// CreateAdmin inserts a new admin. The store assigns the id when a.ID is
	// empty. A duplicate username yields ErrAlreadyExists.
	CreateAdmin(ctx context.Context, a domain.Admin) (domain.Admin, error)

	// IsEmpty returns true if there are no admins.
	IsEmpty(ctx context.Context) (bool, error)
}

type Contacts interface {
	// CreateContact persists c and returns it with its store-assigned id.
	CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error)

	// ListContacts returns every contact, newest first (ties by id desc).
	// An empty store yields an empty, non-nil slice.
	ListContacts(ctx context.Context) ([]domain.Contact, error)

	// DeleteContact removes exactly one contact. Unknown or malformed ids
	// yield ErrNotFound.
	DeleteContact(ctx context.Context, id string) error
}
