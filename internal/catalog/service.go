// Package catalog implements the property catalog service: request
// validation, id lookup and partial-merge update semantics over an injected
// DataStore. It holds no state of its own beyond the store reference.
package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/madhvpruthi/ROOV/internal/models"
	"github.com/madhvpruthi/ROOV/internal/store"
	"github.com/madhvpruthi/ROOV/internal/validation"
)

// PropertyInput is the create payload. Price is a pointer so a missing
// price can be told apart from a price of 0, which is valid.
type PropertyInput struct {
	Title       string        `json:"title"`
	Location    string        `json:"location"`
	Price       *models.Price `json:"price"`
	Description string        `json:"description"`
	Images      []string      `json:"images"`
}

// PropertyPatch carries only the fields present in an update request.
// Nil fields keep their stored value (shallow merge, not replace).
type PropertyPatch struct {
	Title       *string       `json:"title"`
	Location    *string       `json:"location"`
	Price       *models.Price `json:"price"`
	Description *string       `json:"description"`
	Images      *[]string     `json:"images"`
}

// Service is the property catalog service.
type Service struct {
	store  store.DataStore
	logger zerolog.Logger
}

// NewService creates a catalog service backed by the given store.
func NewService(st store.DataStore, logger zerolog.Logger) *Service {
	return &Service{
		store:  st,
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// List returns the full catalog exactly as stored. Filtering, sorting and
// pagination are the frontend's job.
func (s *Service) List(ctx context.Context) ([]models.Property, error) {
	props, err := s.store.ListProperties(ctx)
	if err != nil {
		return nil, err
	}
	if props == nil {
		props = []models.Property{}
	}
	return props, nil
}

// Get retrieves a single property by id.
func (s *Service) Get(ctx context.Context, id int64) (*models.Property, error) {
	return s.store.GetProperty(ctx, id)
}

// Create validates the payload, normalizes optional fields and stores the
// record. The adapter assigns the id.
func (s *Service) Create(ctx context.Context, in PropertyInput) (*models.Property, error) {
	if err := validation.Required("title", in.Title); err != nil {
		return nil, err
	}
	if err := validation.Required("location", in.Location); err != nil {
		return nil, err
	}
	if in.Price == nil {
		return nil, &validation.Error{Field: "price", Reason: "is required"}
	}

	now := time.Now().UTC()
	rec := models.Property{
		Title:       in.Title,
		Location:    in.Location,
		Price:       *in.Price,
		Description: in.Description,
		Images:      in.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if rec.Images == nil {
		rec.Images = []string{}
	}

	created, err := s.store.InsertProperty(ctx, rec)
	if err != nil {
		s.logger.Error().Err(err).Str("title", rec.Title).Msg("failed to insert property")
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Str("title", created.Title).Msg("property created")
	return created, nil
}

// Update merges the patch over the stored record and persists the result.
// Fields absent from the patch keep their previous value; the id never
// changes. The merged record is re-validated, so an update cannot blank out
// a required field.
func (s *Service) Update(ctx context.Context, id int64, patch PropertyPatch) (*models.Property, error) {
	existing, err := s.store.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Location != nil {
		merged.Location = *patch.Location
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Images != nil {
		merged.Images = *patch.Images
		if merged.Images == nil {
			merged.Images = []string{}
		}
	}

	if err := validation.Required("title", merged.Title); err != nil {
		return nil, err
	}
	if err := validation.Required("location", merged.Location); err != nil {
		return nil, err
	}

	merged.UpdatedAt = time.Now().UTC()

	updated, err := s.store.ReplaceProperty(ctx, id, merged)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("id", id).Msg("property updated")
	return updated, nil
}

// Delete removes a property by id. Deleting an unknown id fails with the
// store's not-found error; there are no cascading effects.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteProperty(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("property deleted")
	return nil
}
