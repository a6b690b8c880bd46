package store

import (
	"context"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
)

// WithTimeout bounds every repository call on s by d. A non-positive d
// returns s unchanged.
func WithTimeout(s Store, d time.Duration) Store {
	if d <= 0 {
		return s
	}
	return &timeoutStore{Store: s, d: d}
}

type timeoutStore struct {
	Store
	d time.Duration
}

func (t *timeoutStore) Admins() Admins     { return &timeoutAdmins{next: t.Store.Admins(), d: t.d} }
func (t *timeoutStore) Contacts() Contacts { return &timeoutContacts{next: t.Store.Contacts(), d: t.d} }

func (t *timeoutStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.Store.Ping(ctx)
}

type timeoutAdmins struct {
	next Admins
	d    time.Duration
}

func (a *timeoutAdmins) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, a.d)
	defer cancel()
	return a.next.GetAdminByUsername(ctx, username)
}

func (a *timeoutAdmins) CreateAdmin(ctx context.Context, admin domain.Admin) (domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, a.d)
	defer cancel()
	return a.next.CreateAdmin(ctx, admin)
}

func (a *timeoutAdmins) IsEmpty(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, a.d)
	defer cancel()
	return a.next.IsEmpty(ctx)
}

type timeoutContacts struct {
	next Contacts
	d    time.Duration
}

func (c *timeoutContacts) CreateContact(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, c.d)
	defer cancel()
	return c.next.CreateContact(ctx, contact)
}

func (c *timeoutContacts) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, c.d)
	defer cancel()
	return c.next.ListContacts(ctx)
}

func (c *timeoutContacts) DeleteContact(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, c.d)
	defer cancel()
	return c.next.DeleteContact(ctx, id)
}
