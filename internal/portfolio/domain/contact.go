package domain

import (
	"strings"
	"time"
)

// DefaultContactType is stored when a submission does not name one.
const DefaultContactType = "general"

// Contact is a stored contact-form submission.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Telephone string
	Subject   string
	Message   string
	Type      string
	CreatedAt time.Time
}

// ContactInput is an unvalidated submission from the public form.
type ContactInput struct {
	Name      string
	Email     string
	Telephone string
	Subject   string
	Message   string
	Type      string
}

// HasRequiredFields reports whether name, email and message are all present
// once surrounding whitespace is ignored.
func (in ContactInput) HasRequiredFields() bool {
	return strings.TrimSpace(in.Name) != "" &&
		strings.TrimSpace(in.Email) != "" &&
		strings.TrimSpace(in.Message) != ""
}

// ToContact applies defaults and stamps the creation time.
func (in ContactInput) ToContact(now time.Time) Contact {
	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		kind = DefaultContactType
	}
	return Contact{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Telephone: strings.TrimSpace(in.Telephone),
		Subject:   strings.TrimSpace(in.Subject),
		Message:   in.Message,
		Type:      kind,
		CreatedAt: now.UTC(),
	}
}

// NewestFirst orders contacts by CreatedAt descending, ties broken by ID
// descending. It is a comparison func for slices.SortFunc.
func NewestFirst(a, b Contact) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(b.ID, a.ID)
}
