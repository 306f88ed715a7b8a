package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/madhvpruthi/ROOV/internal/models"
)

// SQLiteStore handles SQLite database operations.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
// If dbPath is empty, defaults to "./data/roov.db"
func NewSQLiteStore(ctx context.Context, dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = "./data/roov.db"
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StorageError{Op: "create database directory", Err: err}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, &StorageError{Op: "open sqlite database", Err: err}
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, &StorageError{Op: "ping sqlite database", Err: err}
	}

	store := &SQLiteStore{db: db}

	// Initialize schema
	if err := store.initSchema(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// initSchema creates tables if they don't exist.
func (s *SQLiteStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS properties (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		location TEXT NOT NULL,
		price REAL NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		images TEXT NOT NULL DEFAULT '[]',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contacts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return &StorageError{Op: "initialize sqlite schema", Err: err}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() {
	s.db.Close()
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListProperties returns all properties ordered by id.
func (s *SQLiteStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, location, price, description, images, created_at, updated_at
		FROM properties ORDER BY id
	`)
	if err != nil {
		return nil, &StorageError{Op: "list properties", Err: err}
	}
	defer rows.Close()

	props := []models.Property{}
	for rows.Next() {
		p, err := scanSQLiteProperty(rows.Scan)
		if err != nil {
			return nil, &StorageError{Op: "scan property row", Err: err}
		}
		props = append(props, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "iterate property rows", Err: err}
	}
	return props, nil
}

// GetProperty retrieves a property by id.
func (s *SQLiteStore) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, location, price, description, images, created_at, updated_at
		FROM properties WHERE id = ?
	`, id)

	p, err := scanSQLiteProperty(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "get property", Err: err}
	}
	return p, nil
}

// InsertProperty stores a new property; SQLite assigns the id.
func (s *SQLiteStore) InsertProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, &StorageError{Op: "encode property images", Err: err}
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO properties (title, location, price, description, images, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, p.Title, p.Location, float64(p.Price), p.Description, string(images), p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, &StorageError{Op: "insert property", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, &StorageError{Op: "read inserted property id", Err: err}
	}
	p.ID = id
	return &p, nil
}

// ReplaceProperty overwrites the record with the given id.
func (s *SQLiteStore) ReplaceProperty(ctx context.Context, id int64, p models.Property) (*models.Property, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, &StorageError{Op: "encode property images", Err: err}
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE properties
		SET title = ?, location = ?, price = ?, description = ?, images = ?, updated_at = ?
		WHERE id = ?
	`, p.Title, p.Location, float64(p.Price), p.Description, string(images), p.UpdatedAt, id)
	if err != nil {
		return nil, &StorageError{Op: "update property", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, &StorageError{Op: "check updated rows", Err: err}
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	p.ID = id
	return &p, nil
}

// DeleteProperty removes the record with the given id.
func (s *SQLiteStore) DeleteProperty(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return &StorageError{Op: "delete property", Err: err}
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return &StorageError{Op: "check deleted rows", Err: err}
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListContacts returns all contact messages ordered by id.
func (s *SQLiteStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, phone, message, created_at
		FROM contacts ORDER BY id
	`)
	if err != nil {
		return nil, &StorageError{Op: "list contacts", Err: err}
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, &StorageError{Op: "scan contact row", Err: err}
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "iterate contact rows", Err: err}
	}
	return contacts, nil
}

// InsertContact stores a new contact message; SQLite assigns the id.
func (s *SQLiteStore) InsertContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (name, phone, message, created_at)
		VALUES (?, ?, ?, ?)
	`, c.Name, c.Phone, c.Message, c.CreatedAt)
	if err != nil {
		return nil, &StorageError{Op: "insert contact", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, &StorageError{Op: "read inserted contact id", Err: err}
	}
	c.ID = id
	return &c, nil
}

// scanSQLiteProperty scans one property row, decoding the images JSON column.
func scanSQLiteProperty(scan func(dest ...any) error) (*models.Property, error) {
	var (
		p         models.Property
		price     float64
		imagesRaw string
		createdAt time.Time
		updatedAt time.Time
	)
	if err := scan(&p.ID, &p.Title, &p.Location, &price, &p.Description, &imagesRaw, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	p.Price = models.Price(price)
	p.CreatedAt = createdAt
	p.UpdatedAt = updatedAt
	if err := json.Unmarshal([]byte(imagesRaw), &p.Images); err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}
