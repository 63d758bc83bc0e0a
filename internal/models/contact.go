package models

import "time"

// Contact represents the single contact-information record shown on the
// website. The resource holds at most one row; POST creates it, PATCH
// updates it.
type Contact struct {
	ID        string    `json:"id"`                  // UUID
	Hours     []string  `json:"hours"`               // working hours, one line per day range
	Address   string    `json:"address,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	WhatsApp  string    `json:"whatsapp,omitempty"`
	Facebook  string    `json:"facebook,omitempty"`
	Instagram string    `json:"instagram,omitempty"`
	Twitter   string    `json:"twitter,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
