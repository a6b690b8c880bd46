package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMigrationsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations(context.Background()))
	require.NoError(t, s.Ping(context.Background()))
}

func TestAdmins(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("empty at start", func(t *testing.T) {
		empty, err := s.Admins().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})

	created := time.Date(2025, 2, 3, 4, 5, 6, 7000, time.UTC)

	t.Run("create and fetch", func(t *testing.T) {
		a, err := s.Admins().CreateAdmin(ctx, domain.Admin{
			Username:     "admin",
			PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
			CreatedAt:    created,
		})
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)

		got, err := s.Admins().GetAdminByUsername(ctx, "admin")
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
		require.Equal(t, a.PasswordHash, got.PasswordHash)
		require.True(t, created.Equal(got.CreatedAt))

		empty, err := s.Admins().IsEmpty(ctx)
		require.NoError(t, err)
		require.False(t, empty)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := s.Admins().CreateAdmin(ctx, domain.Admin{Username: "admin", PasswordHash: "x"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		_, err := s.Admins().GetAdminByUsername(ctx, "ADMIN")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestContacts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	list, err := s.Contacts().ListContacts(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	inputs := []domain.Contact{
		{Name: "Old", Email: "o@x", Message: "m", Type: "general", CreatedAt: base},
		{Name: "Newest", Email: "n@x", Message: "m", Type: "project", Subject: "Hi", CreatedAt: base.Add(2 * time.Second)},
		{Name: "Middle", Email: "m@x", Message: "m", Type: "general", Telephone: "+61 400", CreatedAt: base.Add(500 * time.Millisecond)},
	}
	ids := make(map[string]string)
	for _, in := range inputs {
		c, err := s.Contacts().CreateContact(ctx, in)
		require.NoError(t, err)
		require.NotEmpty(t, c.ID)
		ids[c.Name] = c.ID
	}

	list, err = s.Contacts().ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []string{"Newest", "Middle", "Old"}, []string{list[0].Name, list[1].Name, list[2].Name})
	require.Equal(t, "Hi", list[0].Subject)
	require.Equal(t, "+61 400", list[1].Telephone)
	require.True(t, base.Add(500*time.Millisecond).Equal(list[1].CreatedAt))

	t.Run("delete once", func(t *testing.T) {
		require.NoError(t, s.Contacts().DeleteContact(ctx, ids["Middle"]))
		require.ErrorIs(t, s.Contacts().DeleteContact(ctx, ids["Middle"]), store.ErrNotFound)
	})

	t.Run("delete unknown", func(t *testing.T) {
		require.ErrorIs(t, s.Contacts().DeleteContact(ctx, "nope"), store.ErrNotFound)
	})

	list, err = s.Contacts().ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestFileStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "portfolio.db")

	s, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations(ctx))
	_, err = s.Contacts().CreateContact(ctx, domain.Contact{Name: "A", Email: "a@x", Message: "m", Type: "general"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = sqlite.NewStore(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.ApplyMigrations(ctx))

	list, err := s.Contacts().ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
