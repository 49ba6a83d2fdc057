package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventify/internal/domain"
)

func TestTemplateRenderer_Render_welcome(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	subject, html, text, err := r.Render("welcome", &domain.WelcomeMessageEmailData{
		Email:    "alice@example.com",
		Username: "<alice>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Eventify, <alice>", subject)
	assert.Contains(t, html, "&lt;alice&gt;")
	assert.Contains(t, html, "alice@example.com")
	assert.Contains(t, text, "Welcome to Eventify, <alice>!")
}

func TestTemplateRenderer_Render_unknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, _, _, err = r.Render("missing", nil)
	assert.Error(t, err)
}
