package api

import "github.com/glimmerclean/cleanup-backend/internal/models"

// ContactResponse wraps the single contact-information record.
type ContactResponse struct {
	Message string          `json:"message,omitempty"`
	Data    *models.Contact `json:"data"`
}

// CreateContactRequest creates the contact record. All fields are
// optional; format checks apply only to fields that are present.
type CreateContactRequest struct {
	Hours     []string `json:"hours"     validate:"omitempty,dive,min=1"`
	Address   string   `json:"address"   validate:"omitempty,min=1"`
	Email     string   `json:"email"     validate:"omitempty,email"`
	Phone     string   `json:"phone"     validate:"omitempty,min=3"`
	WhatsApp  string   `json:"whatsapp"  validate:"omitempty,min=3"`
	Facebook  string   `json:"facebook"  validate:"omitempty,url"`
	Instagram string   `json:"instagram" validate:"omitempty,url"`
	Twitter   string   `json:"twitter"   validate:"omitempty,url"`
}

// PatchContactRequest partially updates the contact record.
// Nil fields are left untouched.
type PatchContactRequest struct {
	Hours     *[]string `json:"hours"     validate:"omitempty,dive,min=1"`
	Address   *string   `json:"address"`
	Email     *string   `json:"email"     validate:"omitempty,email"`
	Phone     *string   `json:"phone"     validate:"omitempty,min=3"`
	WhatsApp  *string   `json:"whatsapp"  validate:"omitempty,min=3"`
	Facebook  *string   `json:"facebook"  validate:"omitempty,url"`
	Instagram *string   `json:"instagram" validate:"omitempty,url"`
	Twitter   *string   `json:"twitter"   validate:"omitempty,url"`
}
