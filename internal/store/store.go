package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/madhvpruthi/ROOV/internal/models"
)

// ErrNotFound is returned when no record matches the requested id.
// Every backend translates its own not-found condition into this sentinel
// so callers never have to know which driver is underneath.
var ErrNotFound = errors.New("record not found")

// StorageError wraps an adapter I/O failure (file write, database
// round-trip). It surfaces at the HTTP boundary as a 500.
type StorageError struct {
	Op  string // operation that failed, e.g. "insert property"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// DataStore is the persistence contract shared by every backend.
// MemoryStore, FileStore, SQLiteStore, PostgresStore and RedisStore all
// implement it, so the services can be wired against any of them at startup.
//
// Ids are int64 everywhere: the memory and file backends assign them from a
// monotonic counter starting at 1, the databases from their own sequences.
// Lookups compare ids by value equality only, never across types.
type DataStore interface {
	// Connection management
	Close()
	Ping(ctx context.Context) error

	// Property operations
	ListProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id int64) (*models.Property, error)
	InsertProperty(ctx context.Context, p models.Property) (*models.Property, error)
	ReplaceProperty(ctx context.Context, id int64, p models.Property) (*models.Property, error)
	DeleteProperty(ctx context.Context, id int64) error

	// Contact operations
	ListContacts(ctx context.Context) ([]models.Contact, error)
	InsertContact(ctx context.Context, c models.Contact) (*models.Contact, error)
}
