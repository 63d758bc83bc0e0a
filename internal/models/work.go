package models

import "time"

// PreviousWork represents a portfolio entry shown in the public gallery.
type PreviousWork struct {
	ID          string    `json:"id"`          // UUID
	Title       string    `json:"title"`       // short headline, max 200 chars
	Description string    `json:"description"` // free-form description
	Category    string    `json:"category"`    // e.g. "Commercial", "Residential"
	Images      []string  `json:"images"`      // Cloudinary secure URLs, at least one
	Featured    bool      `json:"featured"`    // shown on the landing page
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WorkFilter narrows ListWorks results.
// Nil pointer fields mean "no constraint".
type WorkFilter struct {
	Category *string
	Featured *bool
	Limit    int
	Offset   int
}
