package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glimmerclean/cleanup-backend/internal/models"
	"github.com/glimmerclean/cleanup-backend/internal/server/media"
	"github.com/glimmerclean/cleanup-backend/internal/server/storage"
	"github.com/glimmerclean/cleanup-backend/internal/validation"
	"github.com/glimmerclean/cleanup-backend/pkg/api"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	// imagesField is the multipart field carrying the image files.
	imagesField = "images"
)

// WorkHandler implements the portfolio gallery endpoints.
type WorkHandler struct {
	logger      *slog.Logger
	works       storage.WorkStorage
	uploader    media.Uploader
	maxFileSize int64
	maxFiles    int
}

// NewWorkHandler creates the portfolio handler.
func NewWorkHandler(logger *slog.Logger, works storage.WorkStorage, uploader media.Uploader, maxFileSize int64, maxFiles int) *WorkHandler {
	return &WorkHandler{
		logger:      logger,
		works:       works,
		uploader:    uploader,
		maxFileSize: maxFileSize,
		maxFiles:    maxFiles,
	}
}

// List handles GET /api/previous-work (public).
// Supports category, featured, limit and offset query parameters.
func (h *WorkHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseListFilter(r)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	works, total, err := h.works.ListWorks(r.Context(), filter)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list previous works", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.WorkListResponse{
		Data: works,
		Pagination: &api.Pagination{
			Total:   total,
			Limit:   filter.Limit,
			Offset:  filter.Offset,
			HasMore: filter.Offset+filter.Limit < total,
		},
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Featured handles GET /api/previous-work/featured (public).
func (h *WorkHandler) Featured(w http.ResponseWriter, r *http.Request) {
	featured := true
	works, _, err := h.works.ListWorks(r.Context(), models.WorkFilter{Featured: &featured})
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list featured works", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.WorkListResponse{Data: works}, http.StatusOK)
}

// Get handles GET /api/previous-work/{id} (public).
func (h *WorkHandler) Get(w http.ResponseWriter, r *http.Request) {
	work, err := h.works.GetWorkByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrWorkNotFound) {
			sendError(h.logger, w, "previous work not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to get previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.WorkResponse{Data: work}, http.StatusOK)
}

// Create handles POST /api/admin/previous-work (admin only).
// Multipart form: title/description/category/featured fields plus one or
// more image files in the "images" parts.
func (h *WorkHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.parseMultipart(r); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	input := api.CreateWorkInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Featured:    r.FormValue("featured") == "true",
	}
	if err := validation.Struct(input); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File[imagesField]
	if len(files) == 0 {
		sendError(h.logger, w, "at least one image is required", http.StatusBadRequest)
		return
	}

	images, err := h.uploadImages(ctx, files)
	if err != nil {
		var reqErr *requestError
		if errors.As(err, &reqErr) {
			sendError(h.logger, w, reqErr.Error(), http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to upload images", slog.Any("error", err))
		sendError(h.logger, w, "failed to upload images", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	work := &models.PreviousWork{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Images:      images,
		Featured:    input.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.works.CreateWork(ctx, work); err != nil {
		h.logger.ErrorContext(ctx, "failed to create previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "previous work created",
		slog.String("work_id", work.ID),
		slog.Int("images", len(images)))

	sendJSON(h.logger, w, api.WorkResponse{
		Message: "Previous work created successfully",
		Data:    work,
	}, http.StatusCreated)
}

// Update handles PUT /api/admin/previous-work/{id} (admin only).
// Form fields are optional; new images, if any, are appended.
func (h *WorkHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	work, err := h.works.GetWorkByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrWorkNotFound) {
			sendError(h.logger, w, "previous work not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.parseMultipart(r); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	input := api.UpdateWorkInput{
		Title:       formValuePtr(r, "title"),
		Description: formValuePtr(r, "description"),
		Category:    formValuePtr(r, "category"),
	}
	if v := formValuePtr(r, "featured"); v != nil {
		featured := *v == "true"
		input.Featured = &featured
	}
	if err := validation.Struct(input); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if input.Title != nil {
		work.Title = *input.Title
	}
	if input.Description != nil {
		work.Description = *input.Description
	}
	if input.Category != nil {
		work.Category = *input.Category
	}
	if input.Featured != nil {
		work.Featured = *input.Featured
	}

	if files := r.MultipartForm.File[imagesField]; len(files) > 0 {
		images, err := h.uploadImages(ctx, files)
		if err != nil {
			var reqErr *requestError
			if errors.As(err, &reqErr) {
				sendError(h.logger, w, reqErr.Error(), http.StatusBadRequest)
				return
			}
			h.logger.ErrorContext(ctx, "failed to upload images", slog.Any("error", err))
			sendError(h.logger, w, "failed to upload images", http.StatusInternalServerError)
			return
		}
		work.Images = append(work.Images, images...)
	}

	work.UpdatedAt = time.Now()
	if err := h.works.UpdateWork(ctx, work); err != nil {
		h.logger.ErrorContext(ctx, "failed to update previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "previous work updated", slog.String("work_id", work.ID))

	sendJSON(h.logger, w, api.WorkResponse{
		Message: "Previous work updated successfully",
		Data:    work,
	}, http.StatusOK)
}

// Delete handles DELETE /api/admin/previous-work/{id} (admin only).
// Media-host deletion is best effort: a failed destroy is logged and the
// database row is removed regardless.
func (h *WorkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	work, err := h.works.GetWorkByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrWorkNotFound) {
			sendError(h.logger, w, "previous work not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	for _, imageURL := range work.Images {
		h.destroyImage(ctx, imageURL)
	}

	if err := h.works.DeleteWork(ctx, work.ID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "previous work deleted", slog.String("work_id", work.ID))

	sendJSON(h.logger, w, api.MessageResponse{Message: "Previous work deleted successfully"}, http.StatusOK)
}

// ToggleFeatured handles PATCH /api/admin/previous-work/{id}/toggle-featured (admin only).
func (h *WorkHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	work, err := h.works.GetWorkByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrWorkNotFound) {
			sendError(h.logger, w, "previous work not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	work.Featured = !work.Featured
	work.UpdatedAt = time.Now()

	if err := h.works.UpdateWork(ctx, work); err != nil {
		h.logger.ErrorContext(ctx, "failed to update previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	message := "Previous work unmarked as featured"
	if work.Featured {
		message = "Previous work marked as featured"
	}

	sendJSON(h.logger, w, api.WorkResponse{Message: message, Data: work}, http.StatusOK)
}

// DeleteImage handles DELETE /api/admin/previous-work/{id}/image (admin only).
// Removes a single image from an entry; the last image cannot be removed.
func (h *WorkHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.DeleteImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	work, err := h.works.GetWorkByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrWorkNotFound) {
			sendError(h.logger, w, "previous work not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	idx := slices.Index(work.Images, req.ImageURL)
	if idx == -1 {
		sendError(h.logger, w, "image not found in this previous work", http.StatusNotFound)
		return
	}
	if len(work.Images) == 1 {
		sendError(h.logger, w, "cannot delete the last image, at least one image is required", http.StatusBadRequest)
		return
	}

	h.destroyImage(ctx, req.ImageURL)

	work.Images = slices.Delete(slices.Clone(work.Images), idx, idx+1)
	work.UpdatedAt = time.Now()

	if err := h.works.UpdateWork(ctx, work); err != nil {
		h.logger.ErrorContext(ctx, "failed to update previous work", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.WorkResponse{
		Message: "Image deleted successfully",
		Data:    work,
	}, http.StatusOK)
}

// requestError marks upload failures caused by the request itself
// (too large, not an image) as opposed to upstream failures.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

// parseMultipart bounds and parses the multipart form.
func (h *WorkHandler) parseMultipart(r *http.Request) error {
	limit := int64(h.maxFiles)*h.maxFileSize + 1<<20 // form fields overhead
	r.Body = http.MaxBytesReader(nil, r.Body, limit)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return fmt.Errorf("invalid multipart form")
	}
	return nil
}

// uploadImages validates and uploads every file in the "images" parts,
// returning their secure URLs in order.
func (h *WorkHandler) uploadImages(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > h.maxFiles {
		return nil, &requestError{msg: fmt.Sprintf("too many files, maximum %d allowed", h.maxFiles)}
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Size > h.maxFileSize {
			return nil, &requestError{msg: fmt.Sprintf("file %s too large, maximum %d bytes allowed", fh.Filename, h.maxFileSize)}
		}
		if ct := fh.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
			return nil, &requestError{msg: fmt.Sprintf("file %s is not an image", fh.Filename)}
		}

		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open uploaded file: %w", err)
		}

		result, err := h.uploader.Upload(ctx, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}

		urls = append(urls, result.SecureURL)
	}

	return urls, nil
}

// destroyImage best-effort removes an image from the media host.
func (h *WorkHandler) destroyImage(ctx context.Context, imageURL string) {
	publicID, err := media.PublicIDFromURL(imageURL)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to extract public id", slog.String("url", imageURL))
		return
	}
	if err := h.uploader.Destroy(ctx, publicID); err != nil {
		h.logger.WarnContext(ctx, "failed to destroy image",
			slog.String("public_id", publicID),
			slog.Any("error", err))
	}
}

func parseListFilter(r *http.Request) (models.WorkFilter, error) {
	filter := models.WorkFilter{Limit: defaultListLimit}
	q := r.URL.Query()

	if category := q.Get("category"); category != "" {
		filter.Category = &category
	}

	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("featured must be true or false")
		}
		filter.Featured = &featured
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxListLimit {
			return filter, fmt.Errorf("limit must be between 1 and %d", maxListLimit)
		}
		filter.Limit = limit
	}

	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filter, fmt.Errorf("offset must be a non-negative integer")
		}
		filter.Offset = offset
	}

	return filter, nil
}

func formValuePtr(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}
