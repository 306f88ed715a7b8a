package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/madhvpruthi/ROOV/internal/models"
)

// PostgresStore handles PostgreSQL database operations.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL store with a connection pool.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &StorageError{Op: "create postgres pool", Err: err}
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, &StorageError{Op: "ping postgres", Err: err}
	}

	store := &PostgresStore{pool: pool}

	if err := store.initSchema(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

// initSchema creates tables if they don't exist.
func (s *PostgresStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS properties (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		location TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		images JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS contacts (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return &StorageError{Op: "initialize postgres schema", Err: err}
	}
	return nil
}

// Close closes the database connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping checks the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// ListProperties returns all properties ordered by id.
func (s *PostgresStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, location, price, description, images, created_at, updated_at
		FROM properties ORDER BY id
	`)
	if err != nil {
		return nil, &StorageError{Op: "list properties", Err: err}
	}
	defer rows.Close()

	props := []models.Property{}
	for rows.Next() {
		p, err := scanPostgresProperty(rows.Scan)
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
func (s *PostgresStore) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT id, title, location, price, description, images, created_at, updated_at
		FROM properties WHERE id = $1
	`, id)

	p, err := scanPostgresProperty(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "get property", Err: err}
	}
	return p, nil
}

// InsertProperty stores a new property; PostgreSQL assigns the id.
func (s *PostgresStore) InsertProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, &StorageError{Op: "encode property images", Err: err}
	}

	err = s.pool.QueryRow(ctx, `
		INSERT INTO properties (title, location, price, description, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7)
		RETURNING id
	`, p.Title, p.Location, float64(p.Price), p.Description, string(images), p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return nil, &StorageError{Op: "insert property", Err: err}
	}
	return &p, nil
}

// ReplaceProperty overwrites the record with the given id.
func (s *PostgresStore) ReplaceProperty(ctx context.Context, id int64, p models.Property) (*models.Property, error) {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return nil, &StorageError{Op: "encode property images", Err: err}
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE properties
		SET title = $1, location = $2, price = $3, description = $4, images = $5::jsonb, updated_at = $6
		WHERE id = $7
	`, p.Title, p.Location, float64(p.Price), p.Description, string(images), p.UpdatedAt, id)
	if err != nil {
		return nil, &StorageError{Op: "update property", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	p.ID = id
	return &p, nil
}

// DeleteProperty removes the record with the given id.
func (s *PostgresStore) DeleteProperty(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return &StorageError{Op: "delete property", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListContacts returns all contact messages ordered by id.
func (s *PostgresStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	rows, err := s.pool.Query(ctx, `
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

// InsertContact stores a new contact message; PostgreSQL assigns the id.
func (s *PostgresStore) InsertContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO contacts (name, phone, message, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, c.Name, c.Phone, c.Message, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return nil, &StorageError{Op: "insert contact", Err: err}
	}
	return &c, nil
}

// scanPostgresProperty scans one property row, decoding the images JSONB column.
func scanPostgresProperty(scan func(dest ...any) error) (*models.Property, error) {
	var (
		p         models.Property
		price     float64
		imagesRaw []byte
	)
	if err := scan(&p.ID, &p.Title, &p.Location, &price, &p.Description, &imagesRaw, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Price = models.Price(price)
	if err := json.Unmarshal(imagesRaw, &p.Images); err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}
