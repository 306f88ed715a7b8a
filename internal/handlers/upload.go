package handlers

import (
	"errors"
	"net/http"

	"github.com/madhvpruthi/ROOV/internal/metrics"
	"github.com/madhvpruthi/ROOV/internal/upload"
)

// UploadImagesResponse carries the public URLs of a stored batch.
type UploadImagesResponse struct {
	ImageURLs []string `json:"imageUrls"`
}

// UploadImages handles POST /api/upload-images: a multipart form with one
// or more files under the "images" field. The batch is all-or-nothing.
func (h *Handler) UploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes()); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	form := r.MultipartForm
	if form == nil || len(form.File["images"]) == 0 {
		h.Error(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	urls, err := h.uploads.Store(r.Context(), form.File["images"])
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrNoFiles):
			h.Error(w, http.StatusBadRequest, "No files uploaded")
		case errors.Is(err, upload.ErrUnsupportedType):
			h.Error(w, http.StatusBadRequest, "only jpg, jpeg, png and webp files are accepted")
		default:
			h.logger.Error().Err(err).Msg("image upload failed")
			h.Error(w, http.StatusInternalServerError, "Failed to upload images")
		}
		return
	}

	metrics.ImagesUploaded.Add(float64(len(urls)))
	h.JSON(w, http.StatusOK, UploadImagesResponse{ImageURLs: urls})
}
