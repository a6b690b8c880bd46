package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/pkg/idx"
)

type contactsRepo struct {
	db DBTX
}

func (r *contactsRepo) CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	// timestamptz keeps microseconds; truncate so the returned record matches a re-read.
	c.CreatedAt = c.CreatedAt.UTC().Truncate(time.Microsecond)
	if c.ID == "" {
		c.ID = idx.NewAt(c.CreatedAt).String()
	}

	query :=
		`INSERT INTO contacts (id, name, email, telephone, subject, message, type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Email, c.Telephone, c.Subject, c.Message, c.Type, c.CreatedAt)
	if err != nil {
		return domain.Contact{}, mapError(err)
	}
	return c, nil
}

func (r *contactsRepo) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	query :=
		`SELECT id, name, email, telephone, subject, message, type, created_at
		 FROM contacts
		 ORDER BY created_at DESC, id DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := make([]domain.Contact, 0)
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Telephone, &c.Subject, &c.Message, &c.Type, &c.CreatedAt); err != nil {
			return nil, mapError(err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (r *contactsRepo) DeleteContact(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
