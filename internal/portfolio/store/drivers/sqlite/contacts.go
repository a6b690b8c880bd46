package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/pkg/idx"
)

type contactsRepo struct {
	db *sql.DB
}

func (r *contactsRepo) CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.CreatedAt = c.CreatedAt.UTC()
	if c.ID == "" {
		c.ID = idx.NewAt(c.CreatedAt).String()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (id, name, email, telephone, subject, message, type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Telephone, c.Subject, c.Message, c.Type, formatTime(c.CreatedAt),
	)
	if err != nil {
		return domain.Contact{}, mapConstraint(err)
	}
	return c, nil
}

func (r *contactsRepo) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, telephone, subject, message, type, created_at
		 FROM contacts
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Contact, 0)
	for rows.Next() {
		var (
			c       domain.Contact
			created string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Telephone, &c.Subject, &c.Message, &c.Type, &created); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *contactsRepo) DeleteContact(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
