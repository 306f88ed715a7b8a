package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/madhvpruthi/ROOV/internal/catalog"
	"github.com/madhvpruthi/ROOV/internal/metrics"
)

// propertyID parses the {id} URL parameter. Ids are int64 in every
// deployment; anything that doesn't parse is simply an unknown id.
func propertyID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ListProperties handles GET /api/properties.
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := h.catalog.List(r.Context())
	if err != nil {
		h.ServiceError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, props)
}

// GetProperty handles GET /api/properties/{id}.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(r)
	if !ok {
		h.Error(w, http.StatusNotFound, "Property not found")
		return
	}

	prop, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		h.ServiceError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, prop)
}

// CreateProperty handles POST /api/properties.
func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var in catalog.PropertyInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	created, err := h.catalog.Create(r.Context(), in)
	if err != nil {
		h.ServiceError(w, err)
		return
	}

	metrics.PropertiesCreated.Inc()
	h.JSON(w, http.StatusCreated, created)
}

// UpdateProperty handles PUT /api/properties/{id}. The body is a partial
// record: absent fields keep their stored value.
func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(r)
	if !ok {
		h.Error(w, http.StatusNotFound, "Property not found")
		return
	}

	var patch catalog.PropertyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := h.catalog.Update(r.Context(), id, patch)
	if err != nil {
		h.ServiceError(w, err)
		return
	}
	h.JSON(w, http.StatusOK, updated)
}

// DeleteProperty handles DELETE /api/properties/{id}.
func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := propertyID(r)
	if !ok {
		h.Error(w, http.StatusNotFound, "Property not found")
		return
	}

	if err := h.catalog.Delete(r.Context(), id); err != nil {
		h.ServiceError(w, err)
		return
	}

	metrics.PropertiesDeleted.Inc()
	h.JSON(w, http.StatusOK, map[string]string{"message": "Deleted successfully"})
}
