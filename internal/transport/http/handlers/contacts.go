package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/mgeraldo/contact-book/internal/application/contacts"
	"github.com/mgeraldo/contact-book/internal/domain"
	"github.com/mgeraldo/contact-book/internal/logger"
	"github.com/mgeraldo/contact-book/internal/transport/http/dto"
	"github.com/mgeraldo/contact-book/internal/transport/http/middleware"
	"github.com/mgeraldo/contact-book/internal/transport/http/response"
)

type ContactsHandler struct {
	svc *contacts.Service
}

func NewContactsHandler(svc *contacts.Service) *ContactsHandler {
	return &ContactsHandler{svc: svc}
}

// callerID reads the verified user identity set by the auth middleware.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	uid, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return "", false
	}
	return uid, true
}

// contactID parses the {contactID} path param. Malformed ids are a 400,
// never a lookup.
func contactID(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "contactID")
	id, err := uuid.Parse(raw)
	if err != nil {
		response.WriteError(w, r, domain.ErrInvalidField("id", "must be a valid uuid"))
		return "", false
	}
	return id.String(), true
}

func (h *ContactsHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.ContactCreateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.WriteError(w, r, domain.ErrInvalidJSON(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), uid, req.Input())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("contact_id", c.ID).
		Msg("contact_created")

	response.Created(w, dto.NewContactView(c))
}

func (h *ContactsHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}

	f := contacts.Filter{
		Name:  r.URL.Query().Get("name"),
		Email: r.URL.Query().Get("email"),
	}

	cs, err := h.svc.List(r.Context(), uid, f)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewContactViews(cs))
}

func (h *ContactsHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.GetByID(r.Context(), id, uid)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewContactView(c))
}

func (h *ContactsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	var req dto.ContactCreateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.WriteError(w, r, domain.ErrInvalidJSON(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	c, err := h.svc.Replace(r.Context(), id, uid, req.Input())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewContactView(c))
}

func (h *ContactsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	var req dto.ContactPatchRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.WriteError(w, r, domain.ErrInvalidJSON(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	c, err := h.svc.Update(r.Context(), id, uid, req.Patch())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewContactView(c))
}

// Delete removes the contact and returns the deleted record.
func (h *ContactsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := callerID(w, r)
	if !ok {
		return
	}
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Delete(r.Context(), id, uid)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("contact_id", c.ID).
		Msg("contact_deleted")

	response.OK(w, dto.NewContactView(c))
}
