package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/glimmerclean/cleanup-backend/internal/models"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage"
	"github.com/glimmerclean/cleanup-backend/internal/validation"
	"github.com/glimmerclean/cleanup-backend/pkg/api"
)

// ContactHandler manages the single contact-information record.
type ContactHandler struct {
	logger   *slog.Logger
	contacts storage.ContactStorage
}

// NewContactHandler creates the contact handler.
func NewContactHandler(logger *slog.Logger, contacts storage.ContactStorage) *ContactHandler {
	return &ContactHandler{
		logger:   logger,
		contacts: contacts,
	}
}

// Get handles GET /api/contact (public).
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contacts.GetContact(r.Context())
	if err != nil {
		if errors.Is(err, storage.ErrContactNotFound) {
			sendError(h.logger, w, "contact information not configured yet", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to get contact", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.ContactResponse{Data: contact}, http.StatusOK)
}

// Create handles POST /api/contact (admin only).
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Struct(req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now()
	contact := &models.Contact{
		ID:        uuid.New().String(),
		Hours:     req.Hours,
		Address:   req.Address,
		Email:     req.Email,
		Phone:     req.Phone,
		WhatsApp:  req.WhatsApp,
		Facebook:  req.Facebook,
		Instagram: req.Instagram,
		Twitter:   req.Twitter,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if contact.Hours == nil {
		contact.Hours = []string{}
	}

	if err := h.contacts.CreateContact(ctx, contact); err != nil {
		if errors.Is(err, storage.ErrContactAlreadyExists) {
			sendError(h.logger, w, "contact information already exists, use PATCH to update", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create contact", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "contact created", slog.String("contact_id", contact.ID))

	sendJSON(h.logger, w, api.ContactResponse{
		Message: "Contact created successfully",
		Data:    contact,
	}, http.StatusCreated)
}

// Patch handles PATCH /api/contact (admin only).
// Only the provided fields are updated.
func (h *ContactHandler) Patch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.PatchContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.Struct(req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	contact, err := h.contacts.GetContact(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrContactNotFound) {
			sendError(h.logger, w, "contact information not found, use POST to create", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get contact", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if req.Hours != nil {
		contact.Hours = *req.Hours
	}
	if req.Address != nil {
		contact.Address = *req.Address
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.WhatsApp != nil {
		contact.WhatsApp = *req.WhatsApp
	}
	if req.Facebook != nil {
		contact.Facebook = *req.Facebook
	}
	if req.Instagram != nil {
		contact.Instagram = *req.Instagram
	}
	if req.Twitter != nil {
		contact.Twitter = *req.Twitter
	}
	contact.UpdatedAt = time.Now()

	if err := h.contacts.UpdateContact(ctx, contact); err != nil {
		h.logger.ErrorContext(ctx, "failed to update contact", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "contact updated", slog.String("contact_id", contact.ID))

	sendJSON(h.logger, w, api.ContactResponse{
		Message: "Contact updated successfully",
		Data:    contact,
	}, http.StatusOK)
}
