package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/portfolio/internal/portfolio/domain"
	"github.com/aussiebroadwan/portfolio/internal/portfolio/service"
	"github.com/aussiebroadwan/portfolio/pkg/httpx"
	"github.com/aussiebroadwan/portfolio/pkg/portfoliosdk"
	"github.com/aussiebroadwan/portfolio/pkg/slogx"
)

// ContactsHandler serves the public contact form and the admin contact list.
type ContactsHandler struct {
	ContactService *service.ContactService
}

// HandleSubmit godoc
//
//	@Summary		Submit contact form
//	@Description	Stores a contact-form submission. Telephone and subject default to empty, type to "general".
//	@Tags			Contacts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		portfoliosdk.ContactRequest	true	"Submission"
//	@Success		201		{object}	portfoliosdk.SubmitContactResponse
//	@Failure		400		{object}	portfoliosdk.ErrorResponse	"missing fields or malformed body"
//	@Failure		500		{object}	portfoliosdk.ErrorResponse
//	@Router			/api/contact [post].
func (h *ContactsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	var req portfoliosdk.ContactRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, portfoliosdk.ErrMsgInvalidBody)
		return
	}

	c, err := h.ContactService.Submit(r.Context(), domain.ContactInput{
		Name:      req.Name,
		Email:     req.Email,
		Telephone: req.Telephone,
		Subject:   req.Subject,
		Message:   req.Message,
		Type:      req.Type,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			httpx.WriteError(w, http.StatusBadRequest, portfoliosdk.ErrMsgContactFieldsRequired)
			return
		}
		l.Error("failed to submit contact", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, portfoliosdk.ErrMsgSubmitFailed)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, portfoliosdk.SubmitContactResponse{
		Message: portfoliosdk.MsgContactSubmitted,
		Contact: toWireContact(c),
	})
}

// HandleList godoc
//
//	@Summary		List contact submissions
//	@Description	Returns every submission, newest first.
//	@Tags			Contacts
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		portfoliosdk.Contact
//	@Failure		401	{object}	portfoliosdk.ErrorResponse	"missing token"
//	@Failure		403	{object}	portfoliosdk.ErrorResponse	"invalid or expired token"
//	@Failure		500	{object}	portfoliosdk.ErrorResponse
//	@Router			/api/contacts [get].
func (h *ContactsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())

	contacts, err := h.ContactService.List(r.Context())
	if err != nil {
		l.Error("failed to list contacts", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, portfoliosdk.ErrMsgReadFailed)
		return
	}

	out := make([]portfoliosdk.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, toWireContact(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleDelete godoc
//
//	@Summary		Delete a contact submission
//	@Tags			Contacts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Contact id"
//	@Success		200	{object}	portfoliosdk.MessageResponse
//	@Failure		401	{object}	portfoliosdk.ErrorResponse	"missing token"
//	@Failure		403	{object}	portfoliosdk.ErrorResponse	"invalid or expired token"
//	@Failure		404	{object}	portfoliosdk.ErrorResponse	"unknown id"
//	@Failure		500	{object}	portfoliosdk.ErrorResponse
//	@Router			/api/contacts/{id} [delete].
func (h *ContactsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())
	id := r.PathValue("id")

	if err := h.ContactService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			httpx.WriteError(w, http.StatusNotFound, portfoliosdk.ErrMsgContactNotFound)
			return
		}
		l.Error("failed to delete contact", slog.String("contact_id", id), slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, portfoliosdk.ErrMsgDeleteFailed)
		return
	}

	if admin, ok := identityFromRequest(r); ok {
		l.Info("contact removed by admin",
			slog.String("contact_id", id),
			slog.String("admin_id", admin.SubjectID),
		)
	}

	httpx.WriteJSON(w, http.StatusOK, portfoliosdk.MessageResponse{Message: portfoliosdk.MsgContactDeleted})
}

func toWireContact(c domain.Contact) portfoliosdk.Contact {
	return portfoliosdk.Contact{
		ID:        c.ID,
		LegacyID:  c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Telephone: c.Telephone,
		Subject:   c.Subject,
		Message:   c.Message,
		Type:      c.Type,
		CreatedAt: c.CreatedAt,
	}
}
