package contact

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhvpruthi/ROOV/internal/store"
	"github.com/madhvpruthi/ROOV/internal/validation"
)

func newTestService() *Service {
	return NewService(store.NewMemoryStore(), zerolog.Nop())
}

func TestCreateStampsServerTime(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), Input{Name: "A", Phone: "555", Message: "Hi"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "A", created.Name)
	assert.False(t, created.CreatedAt.IsZero(), "createdAt is set by the server")
}

func TestCreateRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		in    Input
		field string
	}{
		{name: "missing name", in: Input{Phone: "555", Message: "Hi"}, field: "name"},
		{name: "missing phone", in: Input{Name: "A", Message: "Hi"}, field: "phone"},
		{name: "missing message", in: Input{Name: "A", Phone: "555"}, field: "message"},
		{name: "whitespace message", in: Input{Name: "A", Phone: "555", Message: "  "}, field: "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService()
			_, err := svc.Create(context.Background(), tt.in)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestListReturnsStorageOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(ctx, Input{Name: name, Phone: "555", Message: "Hi"})
		require.NoError(t, err)
	}

	contacts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "A", contacts[0].Name)
	assert.Equal(t, "C", contacts[2].Name)
}

func TestListNeverReturnsNil(t *testing.T) {
	svc := newTestService()

	contacts, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Empty(t, contacts)
}
