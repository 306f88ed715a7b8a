package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/madhvpruthi/ROOV/internal/models"
)

// FileStore persists each collection as a single JSON array file. Every
// operation reads the whole file, mutates the decoded slice and rewrites the
// file wholesale — acceptable only at catalog scale. Missing files are
// auto-created as "[]".
//
// A mutex serializes all operations so concurrent writers cannot interleave
// read-modify-write cycles; rewrites go through a temp file plus rename so a
// crash mid-write never leaves a torn collection behind.
type FileStore struct {
	mu sync.Mutex

	propertiesPath string
	contactsPath   string

	nextPropertyID int64
	nextContactID  int64
}

// NewFileStore creates a file-backed store rooted at dir.
// If dir is empty, defaults to "./data".
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &StorageError{Op: "create data directory", Err: err}
	}

	s := &FileStore{
		propertiesPath: filepath.Join(dir, "properties.json"),
		contactsPath:   filepath.Join(dir, "contacts.json"),
	}

	// Seed the id counters from whatever is already on disk.
	props, err := s.readProperties()
	if err != nil {
		return nil, err
	}
	contacts, err := s.readContacts()
	if err != nil {
		return nil, err
	}

	s.nextPropertyID = 1
	for _, p := range props {
		if p.ID >= s.nextPropertyID {
			s.nextPropertyID = p.ID + 1
		}
	}
	s.nextContactID = 1
	for _, c := range contacts {
		if c.ID >= s.nextContactID {
			s.nextContactID = c.ID + 1
		}
	}

	return s, nil
}

// Close is a no-op: every operation opens and closes the files itself.
func (s *FileStore) Close() {}

// Ping verifies the properties file is readable.
func (s *FileStore) Ping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.readProperties()
	return err
}

// readProperties loads the full properties collection, creating an empty
// file if none exists yet.
func (s *FileStore) readProperties() ([]models.Property, error) {
	data, err := os.ReadFile(s.propertiesPath)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.writeFile(s.propertiesPath, []byte("[]")); err != nil {
			return nil, err
		}
		return []models.Property{}, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read properties file", Err: err}
	}

	var props []models.Property
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, &StorageError{Op: "decode properties file", Err: err}
	}
	return props, nil
}

func (s *FileStore) writeProperties(props []models.Property) error {
	data, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode properties file", Err: err}
	}
	return s.writeFile(s.propertiesPath, data)
}

func (s *FileStore) readContacts() ([]models.Contact, error) {
	data, err := os.ReadFile(s.contactsPath)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.writeFile(s.contactsPath, []byte("[]")); err != nil {
			return nil, err
		}
		return []models.Contact{}, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "read contacts file", Err: err}
	}

	var contacts []models.Contact
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, &StorageError{Op: "decode contacts file", Err: err}
	}
	return contacts, nil
}

func (s *FileStore) writeContacts(contacts []models.Contact) error {
	data, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode contacts file", Err: err}
	}
	return s.writeFile(s.contactsPath, data)
}

// writeFile writes data through a uniquely named temp file and renames it
// over the target, so readers never observe a partial write.
func (s *FileStore) writeFile(path string, data []byte) error {
	tmp := path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return &StorageError{Op: "write collection file", Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &StorageError{Op: "replace collection file", Err: err}
	}
	return nil
}

// ListProperties returns all properties in stored order.
func (s *FileStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readProperties()
}

// GetProperty retrieves a property by id.
func (s *FileStore) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.readProperties()
	if err != nil {
		return nil, err
	}
	for i := range props {
		if props[i].ID == id {
			p := props[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// InsertProperty assigns the next id, appends the record and rewrites the file.
func (s *FileStore) InsertProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.readProperties()
	if err != nil {
		return nil, err
	}

	p.ID = s.nextPropertyID
	props = append(props, p)
	if err := s.writeProperties(props); err != nil {
		return nil, err
	}
	s.nextPropertyID++

	stored := p
	return &stored, nil
}

// ReplaceProperty overwrites the record with the given id and rewrites the file.
func (s *FileStore) ReplaceProperty(ctx context.Context, id int64, p models.Property) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.readProperties()
	if err != nil {
		return nil, err
	}
	for i := range props {
		if props[i].ID == id {
			p.ID = id
			props[i] = p
			if err := s.writeProperties(props); err != nil {
				return nil, err
			}
			stored := p
			return &stored, nil
		}
	}
	return nil, ErrNotFound
}

// DeleteProperty removes the record with the given id and rewrites the file.
func (s *FileStore) DeleteProperty(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	props, err := s.readProperties()
	if err != nil {
		return err
	}
	for i := range props {
		if props[i].ID == id {
			props = append(props[:i], props[i+1:]...)
			return s.writeProperties(props)
		}
	}
	return ErrNotFound
}

// ListContacts returns all contact messages in stored order.
func (s *FileStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readContacts()
}

// InsertContact assigns the next id, appends the message and rewrites the file.
func (s *FileStore) InsertContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.readContacts()
	if err != nil {
		return nil, err
	}

	c.ID = s.nextContactID
	contacts = append(contacts, c)
	if err := s.writeContacts(contacts); err != nil {
		return nil, err
	}
	s.nextContactID++

	stored := c
	return &stored, nil
}
