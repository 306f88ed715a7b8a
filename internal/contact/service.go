// Package contact implements the contact intake service. It mirrors the
// catalog service's shape but is create-only: messages are never updated or
// deleted.
package contact

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/madhvpruthi/ROOV/internal/models"
	"github.com/madhvpruthi/ROOV/internal/store"
	"github.com/madhvpruthi/ROOV/internal/validation"
)

// Input is the contact-form payload. All three fields are required.
type Input struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Service is the contact intake service.
type Service struct {
	store  store.DataStore
	logger zerolog.Logger
}

// NewService creates a contact intake service backed by the given store.
func NewService(st store.DataStore, logger zerolog.Logger) *Service {
	return &Service{
		store:  st,
		logger: logger.With().Str("component", "contact").Logger(),
	}
}

// Create validates the payload, stamps the creation time and stores the
// message. The adapter assigns the id.
func (s *Service) Create(ctx context.Context, in Input) (*models.Contact, error) {
	if err := validation.Required("name", in.Name); err != nil {
		return nil, err
	}
	if err := validation.Required("phone", in.Phone); err != nil {
		return nil, err
	}
	if err := validation.Required("message", in.Message); err != nil {
		return nil, err
	}

	rec := models.Contact{
		Name:      in.Name,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.store.InsertContact(ctx, rec)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert contact")
		return nil, err
	}

	s.logger.Info().Int64("id", created.ID).Msg("contact message received")
	return created, nil
}

// List returns all stored messages in storage order.
func (s *Service) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, err
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}
