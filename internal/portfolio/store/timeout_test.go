package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

// deadlineContacts records the deadline each call observed.
type deadlineContacts struct {
	store.Contacts
	deadline time.Time
	ok       bool
}

func (d *deadlineContacts) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	d.deadline, d.ok = ctx.Deadline()
	return d.Contacts.ListContacts(ctx)
}

type spyStore struct {
	*memory.Store
	contacts *deadlineContacts
}

func (s *spyStore) Contacts() store.Contacts { return s.contacts }

func TestWithTimeout(t *testing.T) {
	mem := memory.NewStore()
	spy := &spyStore{Store: mem, contacts: &deadlineContacts{Contacts: mem.Contacts()}}

	t.Run("zero duration is passthrough", func(t *testing.T) {
		require.Same(t, store.Store(spy), store.WithTimeout(spy, 0))
	})

	t.Run("deadline applied", func(t *testing.T) {
		wrapped := store.WithTimeout(spy, 2*time.Second)

		before := time.Now()
		list, err := wrapped.Contacts().ListContacts(context.Background())
		require.NoError(t, err)
		require.Empty(t, list)

		require.True(t, spy.contacts.ok)
		require.WithinDuration(t, before.Add(2*time.Second), spy.contacts.deadline, time.Second)
	})

	t.Run("other repos still work", func(t *testing.T) {
		wrapped := store.WithTimeout(spy, time.Second)
		_, err := wrapped.Admins().CreateAdmin(context.Background(), domain.Admin{Username: "admin", PasswordHash: "h"})
		require.NoError(t, err)
		require.NoError(t, wrapped.Ping(context.Background()))
	})
}
