package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/store"
	"github.com/aussiebroadwan/portfolio/pkg/slogx"
)

var ErrContactNotFound = errors.New("contact not found")

type ContactService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// Submit validates and stores a public contact-form submission.
func (s *ContactService) Submit(ctx context.Context, in domain.ContactInput) (domain.Contact, error) {
	if !in.HasRequiredFields() {
		return domain.Contact{}, ErrMissingFields
	}

	c, err := s.Store.Contacts().CreateContact(ctx, in.ToContact(s.now()))
	if err != nil {
		return domain.Contact{}, fmt.Errorf("create contact: %w", err)
	}

	slogx.FromContext(ctx).Info("contact submitted",
		slog.String("contact_id", c.ID),
		slog.String("type", c.Type),
	)
	return c, nil
}

// List returns every submission, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.Store.Contacts().ListContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, nil
}

// Delete removes one submission by id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrContactNotFound
	}

	if err := s.Store.Contacts().DeleteContact(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("delete contact: %w", err)
	}

	slogx.FromContext(ctx).Info("contact deleted", slog.String("contact_id", id))
	return nil
}

func (s *ContactService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
