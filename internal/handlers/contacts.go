package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/madhvpruthi/ROOV/internal/contact"
	"github.com/madhvpruthi/ROOV/internal/metrics"
)

// CreateContact handles POST /api/contact.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var in contact.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.contacts.Create(r.Context(), in)
	if err != nil {
		h.ServiceError(w, err)
		return
	}

	metrics.ContactsReceived.Inc()
	h.JSON(w, http.StatusCreated, created)
}

// ListContacts handles GET /api/contacts.
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.List(r.Context())
	if err != nil {
		h.ServiceError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, contacts)
}
