package store

import (
	"context"
	"sync"

	"github.com/madhvpruthi/ROOV/internal/models"
)

// MemoryStore keeps all records in process memory. It is the reference
// adapter: a mutable ordered slice per collection plus a monotonic id
// counter. Ids start at 1 and are never reused or decremented, even after
// deletes. Lookup is O(n), which is fine at catalog scale (hundreds of
// records).
//
// A single mutex guards every read-modify-write sequence so id assignment
// and insert cannot race under concurrent requests.
type MemoryStore struct {
	mu sync.Mutex

	properties     []models.Property
	nextPropertyID int64

	contacts      []models.Contact
	nextContactID int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextPropertyID: 1,
		nextContactID:  1,
	}
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() {}

// Ping always succeeds.
func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// ListProperties returns all properties in insertion order.
func (s *MemoryStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Property, len(s.properties))
	copy(out, s.properties)
	return out, nil
}

// GetProperty retrieves a property by id.
func (s *MemoryStore) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.properties {
		if s.properties[i].ID == id {
			p := s.properties[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// InsertProperty assigns the next id and appends the record.
func (s *MemoryStore) InsertProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextPropertyID
	s.nextPropertyID++
	s.properties = append(s.properties, p)

	stored := p
	return &stored, nil
}

// ReplaceProperty overwrites the record with the given id in place.
func (s *MemoryStore) ReplaceProperty(ctx context.Context, id int64, p models.Property) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.properties {
		if s.properties[i].ID == id {
			p.ID = id
			s.properties[i] = p
			stored := p
			return &stored, nil
		}
	}
	return nil, ErrNotFound
}

// DeleteProperty removes the record with the given id. The id is not
// reassigned to later inserts.
func (s *MemoryStore) DeleteProperty(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.properties {
		if s.properties[i].ID == id {
			s.properties = append(s.properties[:i], s.properties[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListContacts returns all contact messages in insertion order.
func (s *MemoryStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

// InsertContact assigns the next id and appends the message.
func (s *MemoryStore) InsertContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextContactID
	s.nextContactID++
	s.contacts = append(s.contacts, c)

	stored := c
	return &stored, nil
}
