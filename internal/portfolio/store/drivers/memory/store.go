// Package memory is an in-process Store used by tests and by
// STORE_DRIVER=memory. Data does not survive a restart.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/pkg/idx"
)

var errClosed = errors.New("memory: store closed")

type Store struct {
	mu       sync.RWMutex
	admins   map[string]domain.Admin // keyed by username
	contacts map[string]domain.Contact
	closed   bool

	// PingErr, when set, is returned by Ping.
	PingErr error
}

func NewStore() *Store {
	return &Store{
		admins:   make(map[string]domain.Admin),
		contacts: make(map[string]domain.Contact),
	}
}

func (s *Store) Admins() store.Admins     { return &adminsRepo{s: s} }
func (s *Store) Contacts() store.Contacts { return &contactsRepo{s: s} }

// ApplyMigrations is a no-op; there is no schema.
func (s *Store) ApplyMigrations(context.Context) error { return nil }

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return errClosed
	}
	return s.PingErr
}

type adminsRepo struct{ s *Store }

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	if err := ctx.Err(); err != nil {
		return domain.Admin{}, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.admins[username]
	if !ok {
		return domain.Admin{}, store.ErrNotFound
	}
	return a, nil
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) (domain.Admin, error) {
	if err := ctx.Err(); err != nil {
		return domain.Admin{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.admins[a.Username]; ok {
		return domain.Admin{}, store.ErrAlreadyExists
	}
	if a.ID == "" {
		a.ID = idx.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	r.s.admins[a.Username] = a
	return a, nil
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.admins) == 0, nil
}

type contactsRepo struct{ s *Store }

func (r *contactsRepo) CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return domain.Contact{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if c.ID == "" {
		c.ID = idx.NewAt(c.CreatedAt).String()
	}
	if _, ok := r.s.contacts[c.ID]; ok {
		return domain.Contact{}, store.ErrAlreadyExists
	}
	r.s.contacts[c.ID] = c
	return c, nil
}

func (r *contactsRepo) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	out := make([]domain.Contact, 0, len(r.s.contacts))
	for _, c := range r.s.contacts {
		out = append(out, c)
	}
	r.s.mu.RUnlock()

	slices.SortFunc(out, domain.NewestFirst)
	return out, nil
}

func (r *contactsRepo) DeleteContact(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contacts[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.contacts, id)
	return nil
}
