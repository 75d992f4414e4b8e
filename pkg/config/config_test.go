package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSOriginsDefault(t *testing.T) {
	// An empty override is treated as unset.
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := New()
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
}

func TestCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg := New()
	assert.Equal(t,
		[]string{"https://app.example.com", "https://admin.example.com"},
		cfg.Server.CORSOrigins,
	)
}

func TestSplitListTrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t,
		[]string{"a", "b"},
		splitList(" a ,, b ,"),
	)
}
