package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("title", "Lake House"))
	assert.NoError(t, Required("price", "0"))

	err := Required("title", "")
	require.Error(t, err)
	assert.Equal(t, "title is required", err.Error())

	assert.Error(t, Required("title", "   "))
}

func TestErrorExposesField(t *testing.T) {
	err := &Error{Field: "location", Reason: "is required"}

	var verr *Error
	require.ErrorAs(t, error(err), &verr)
	assert.Equal(t, "location", verr.Field)
}
