// Package media handles portfolio image storage on the cloud media host.
package media

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidURL indicates that a stored image URL could not be mapped back
// to a media-host public id.
var ErrInvalidURL = errors.New("invalid media URL")

// UploadResult describes a stored image.
type UploadResult struct {
	// SecureURL is the https delivery URL persisted with the portfolio entry.
	SecureURL string
	// PublicID identifies the asset on the media host, used for deletion.
	PublicID string
}

// Uploader stores and removes portfolio images.
type Uploader interface {
	// Upload stores one image and returns its delivery URL and public id.
	Upload(ctx context.Context, r io.Reader) (*UploadResult, error)

	// Destroy removes the asset with the given public id. Destroying an
	// unknown id is not an error on the media host side.
	Destroy(ctx context.Context, publicID string) error
}
