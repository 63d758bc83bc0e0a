package api

import "github.com/glimmerclean/cleanup-backend/internal/models"

// Pagination describes the window of a list response.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

// WorkListResponse represents the public gallery listing.
type WorkListResponse struct {
	Data       []*models.PreviousWork `json:"data"`
	Pagination *Pagination            `json:"pagination,omitempty"`
}

// WorkResponse wraps a single portfolio entry.
type WorkResponse struct {
	Message string               `json:"message,omitempty"`
	Data    *models.PreviousWork `json:"data"`
}

// CreateWorkInput holds the multipart form fields of a create request.
// Image files travel separately in the "images" parts.
type CreateWorkInput struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"required"`
	Category    string `validate:"required"`
	Featured    bool
}

// UpdateWorkInput holds the multipart form fields of an update request.
// Nil fields are left untouched.
type UpdateWorkInput struct {
	Title       *string `validate:"omitempty,min=1,max=200"`
	Description *string `validate:"omitempty,min=1"`
	Category    *string `validate:"omitempty,min=1"`
	Featured    *bool
}

// DeleteImageRequest names the image to remove from a portfolio entry.
type DeleteImageRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
}
