package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/pkg/idx"
)

type adminsRepo struct {
	db DBTX
}

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	query :=
		`SELECT id, username, password_hash, created_at FROM admins
		 WHERE username = $1
		 `

	var a domain.Admin
	err := r.db.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return domain.Admin{}, mapError(err)
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

func (r *adminsRepo) CreateAdmin(ctx context.Context, a domain.Admin) (domain.Admin, error) {
	if a.ID == "" {
		a.ID = idx.New().String()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.CreatedAt = a.CreatedAt.UTC()

	query :=
		`INSERT INTO admins (id, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 `

	if _, err := r.db.ExecContext(ctx, query, a.ID, a.Username, a.PasswordHash, a.CreatedAt); err != nil {
		return domain.Admin{}, mapError(err)
	}
	return a, nil
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM admins)`).Scan(&exists)
	if err != nil {
		return false, mapError(err)
	}
	return !exists, nil
}
