package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/properties", "/api/properties"},
		{"/api/properties/42", "/api/properties/{id}"},
		{"/api/properties/9000", "/api/properties/{id}"},
		{"/uploads/01J8ZK3V.jpg", "/uploads/{file}"},
		{"/health", "/health"},
		{"/", "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.path), tt.path)
	}
}
