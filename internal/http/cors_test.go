package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrigins(t *testing.T) {
	t.Run("Success_MultipleOrigins", func(t *testing.T) {
		origins := parseOrigins("https://app.example.com, https://admin.example.com")
		assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, origins)
	})

	t.Run("Success_TrimsEmptyEntries", func(t *testing.T) {
		origins := parseOrigins("https://app.example.com,, ,https://admin.example.com")
		assert.Len(t, origins, 2)
	})

	t.Run("Success_Empty", func(t *testing.T) {
		assert.Nil(t, parseOrigins(""))
	})
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := discardLogger()

	t.Run("NilWhenDisabled", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, "https://app.example.com", logger))
	})

	t.Run("NilWhenNoOrigins", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, "", logger))
		assert.Nil(t, createCORSMiddleware(true, " , ", logger))
	})

	t.Run("MiddlewareWhenConfigured", func(t *testing.T) {
		assert.NotNil(t, createCORSMiddleware(true, "https://app.example.com", logger))
	})
}
