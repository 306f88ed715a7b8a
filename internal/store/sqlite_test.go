package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "roov.db"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestSQLiteStorePropertyCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	p := newTestProperty("Lake House")
	p.Images = []string{"http://localhost:8000/uploads/a.jpg", "http://localhost:8000/uploads/b.jpg"}

	created, err := s.InsertProperty(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := s.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lake House", got.Title)
	assert.Equal(t, p.Images, got.Images, "image order survives the round trip")

	got.Price = 260000
	updated, err := s.ReplaceProperty(ctx, created.ID, *got)
	require.NoError(t, err)
	assert.Equal(t, float64(260000), float64(updated.Price))

	require.NoError(t, s.DeleteProperty(ctx, created.ID))
	_, err = s.GetProperty(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStoreNotFoundTranslation(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	_, err := s.GetProperty(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.ReplaceProperty(ctx, 99, newTestProperty("x"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteProperty(ctx, 99), ErrNotFound)
}

func TestSQLiteStoreEmptyImagesStayNonNil(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	created, err := s.InsertProperty(ctx, newTestProperty("bare"))
	require.NoError(t, err)

	got, err := s.GetProperty(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Images)
	assert.Empty(t, got.Images)

	props, err := s.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.NotNil(t, props[0].Images)
}

func TestSQLiteStoreContacts(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	created, err := s.InsertContact(ctx, testContact())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	contacts, err := s.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "A", contacts[0].Name)
}

func TestSQLiteStoreIDsSurviveDeletes(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	for _, title := range []string{"a", "b", "c"} {
		_, err := s.InsertProperty(ctx, newTestProperty(title))
		require.NoError(t, err)
	}
	require.NoError(t, s.DeleteProperty(ctx, 3))

	// AUTOINCREMENT never hands out a previously used id.
	next, err := s.InsertProperty(ctx, newTestProperty("d"))
	require.NoError(t, err)
	assert.Equal(t, int64(4), next.ID)
}
