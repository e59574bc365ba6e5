package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorsConfigSemOrigens(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")

	config := corsConfig()

	assert.True(t, config.AllowAllOrigins)
	assert.Empty(t, config.AllowOrigins)
	assert.Equal(t, []string{"GET", "POST", "PUT", "OPTIONS"}, config.AllowMethods)
	assert.Equal(t, []string{"Content-Type", "Authorization"}, config.AllowHeaders)
}

func TestCorsConfigComListaDeOrigens(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://painel.exemplo.com, https://app.exemplo.com ,")

	config := corsConfig()

	assert.False(t, config.AllowAllOrigins)
	assert.Equal(t, []string{"https://painel.exemplo.com", "https://app.exemplo.com"}, config.AllowOrigins)
}
