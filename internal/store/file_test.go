package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreAutoCreatesEmptyCollections(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	defer s.Close()

	props, err := s.ListProperties(ctx)
	require.NoError(t, err)
	assert.Empty(t, props)

	data, err := os.ReadFile(filepath.Join(dir, "properties.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestFileStoreCRUDPersistsToDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	created, err := s.InsertProperty(ctx, newTestProperty("Lake House"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	updated := *created
	updated.Price = 260000
	_, err = s.ReplaceProperty(ctx, created.ID, updated)
	require.NoError(t, err)

	// A fresh store over the same directory sees the same state.
	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	got, err := reopened.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lake House", got.Title)
	assert.Equal(t, float64(260000), float64(got.Price))
}

func TestFileStoreReseedsCounterOnReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	for _, title := range []string{"a", "b", "c"} {
		_, err := s.InsertProperty(ctx, newTestProperty(title))
		require.NoError(t, err)
	}
	require.NoError(t, s.DeleteProperty(ctx, 2))

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	next, err := reopened.InsertProperty(ctx, newTestProperty("d"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), next.ID, "counter seeds past the highest stored id")
}

func TestFileStoreNotFound(t *testing.T) {
	ctx := context.Background()

	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.GetProperty(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.ReplaceProperty(ctx, 1, newTestProperty("x"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteProperty(ctx, 1), ErrNotFound)
}

func TestFileStoreCorruptFileIsStorageError(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "properties.json"), []byte("{not json"), 0644))

	_, err := NewFileStore(dir)
	require.Error(t, err)

	var serr *StorageError
	assert.ErrorAs(t, err, &serr)

	// The same failure surfaces on every operation, it never panics.
	s := &FileStore{
		propertiesPath: filepath.Join(dir, "properties.json"),
		contactsPath:   filepath.Join(dir, "contacts.json"),
	}
	_, err = s.ListProperties(ctx)
	assert.ErrorAs(t, err, &serr)
}

func TestFileStoreContactsPersist(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFileStore(dir)
	require.NoError(t, err)

	created, err := s.InsertContact(ctx, testContact())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)

	contacts, err := reopened.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "A", contacts[0].Name)
}
