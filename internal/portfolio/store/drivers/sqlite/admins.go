package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/pkg/idx"
)

type adminsRepo struct {
	db *sql.DB
}

func (r *adminsRepo) GetAdminByUsername(ctx context.Context, username string) (domain.Admin, error) {
	var (
		a       domain.Admin
		created string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = ?`,
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &created)
	if err != nil {
		return domain.Admin{}, mapNotFound(err)
	}

	if a.CreatedAt, err = parseTime(created); err != nil {
		return domain.Admin{}, err
	}
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

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO admins (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		a.ID, a.Username, a.PasswordHash, formatTime(a.CreatedAt),
	)
	if err != nil {
		return domain.Admin{}, mapConstraint(err)
	}
	return a, nil
}

func (r *adminsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
