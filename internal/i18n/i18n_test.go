package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTranslate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{
			name:     "english message",
			key:      ErrKeyPenNotFound,
			locale:   "en",
			expected: "Pen not found",
		},
		{
			name:     "portuguese message",
			key:      ErrKeyPenNotFound,
			locale:   "pt",
			expected: "Caneta não encontrada",
		},
		{
			name:     "empty locale falls back to english",
			key:      ErrKeyInternalError,
			locale:   "",
			expected: "An unexpected error occurred",
		},
		{
			name:     "unknown locale falls back to english",
			key:      ErrKeyInvalidCredentials,
			locale:   "fr",
			expected: "Invalid email or password",
		},
		{
			name:     "unknown key returns the key",
			key:      "error.does_not_exist",
			locale:   "en",
			expected: "error.does_not_exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{
			name:           "no header",
			acceptLanguage: "",
			expected:       "en",
		},
		{
			name:           "simple locale",
			acceptLanguage: "pt",
			expected:       "pt",
		},
		{
			name:           "locale with region",
			acceptLanguage: "pt-BR,pt;q=0.9",
			expected:       "pt",
		},
		{
			name:           "quality list picks first",
			acceptLanguage: "en-US,en;q=0.9,pt;q=0.8",
			expected:       "en",
		},
		{
			name:           "unsupported locale falls back",
			acceptLanguage: "de-DE,de;q=0.9",
			expected:       "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestGetTranslator_Singleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}
