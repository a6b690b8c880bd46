package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/pkg/cryptox"
	"github.com/aussiebroadwan/portfolio/pkg/slogx"
)

var ErrSeedPasswordRequired = errors.New("admin password is required to seed an empty store")

type BootstrapService struct {
	Store    store.Store
	Hasher   *cryptox.PasswordHasher
	Username string
	Password string
}

// SeedDefaultAdmin creates the configured admin when no admin exists yet.
// It reports whether an admin was created and is safe to run on every start.
func (s *BootstrapService) SeedDefaultAdmin(ctx context.Context) (bool, error) {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.Admins().IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("check admins: %w", err)
	}
	if !empty {
		l.Debug("admin already present, skipping seed")
		return false, nil
	}

	if s.Password == "" {
		return false, ErrSeedPasswordRequired
	}

	hash, err := s.Hasher.Hash(s.Password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin, err := s.Store.Admins().CreateAdmin(ctx, domain.Admin{
		Username:     s.Username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Another instance seeded between IsEmpty and CreateAdmin.
			l.Info("admin seeded concurrently, skipping")
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}

	l.Info("default admin created",
		slog.String("admin_id", admin.ID),
		slog.String("username", admin.Username),
	)
	return true, nil
}
