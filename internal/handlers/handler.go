package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/madhvpruthi/ROOV/internal/catalog"
	"github.com/madhvpruthi/ROOV/internal/config"
	"github.com/madhvpruthi/ROOV/internal/contact"
	"github.com/madhvpruthi/ROOV/internal/store"
	"github.com/madhvpruthi/ROOV/internal/upload"
	"github.com/madhvpruthi/ROOV/internal/validation"
)

// Handler contains shared dependencies for all HTTP handlers.
type Handler struct {
	catalog  *catalog.Service
	contacts *contact.Service
	uploads  upload.Gateway
	store    store.DataStore
	cfg      *config.Config
	logger   zerolog.Logger
}

// NewHandler creates a new Handler with the given services.
func NewHandler(cat *catalog.Service, contacts *contact.Service, uploads upload.Gateway, st store.DataStore, cfg *config.Config, logger zerolog.Logger) *Handler {
	return &Handler{
		catalog:  cat,
		contacts: contacts,
		uploads:  uploads,
		store:    st,
		cfg:      cfg,
		logger:   logger.With().Str("component", "handlers").Logger(),
	}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}

// ServiceError maps a service failure to the right status code:
// validation 400, unknown id 404, anything else 500.
func (h *Handler) ServiceError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		h.Error(w, http.StatusBadRequest, verr.Error())
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		h.Error(w, http.StatusNotFound, "Property not found")
		return
	}
	h.logger.Error().Err(err).Msg("request failed")
	h.Error(w, http.StatusInternalServerError, "internal error")
}
