package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/glimmerclean/cleanup-backend/internal/config"
)

// CloudinaryUploader implements Uploader on the Cloudinary API.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader creates an uploader from the configured credentials.
func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	return &CloudinaryUploader{
		client: client,
		folder: cfg.Folder,
	}, nil
}

// Upload stores one image in the configured folder.
func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader) (*UploadResult, error) {
	resp, err := u.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder: u.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("upload image: %s", resp.Error.Message)
	}

	return &UploadResult{
		SecureURL: resp.SecureURL,
		PublicID:  resp.PublicID,
	}, nil
}

// Destroy removes the asset with the given public id.
func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	if _, err := u.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("destroy image %s: %w", publicID, err)
	}
	return nil
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// PublicIDFromURL recovers the media-host public id from a stored delivery
// URL. Cloudinary URL format:
//
//	https://res.cloudinary.com/{cloud}/image/upload/{version?}/{folder}/{public_id}.{format}
//
// The version segment ("v1234567890") is optional; the extension is dropped.
func PublicIDFromURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	parts := strings.Split(parsed.Path, "/")
	uploadIdx := -1
	for i, part := range parts {
		if part == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx == -1 || uploadIdx == len(parts)-1 {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	rest := parts[uploadIdx+1:]
	if versionSegment.MatchString(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	fullPath := strings.Join(rest, "/")
	if dot := strings.LastIndex(fullPath, "."); dot > strings.LastIndex(fullPath, "/") {
		fullPath = fullPath[:dot]
	}
	if fullPath == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, rawURL)
	}

	return fullPath, nil
}
