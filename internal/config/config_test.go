package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("LLM_TIMEOUT", "")
	t.Setenv("MAX_FILE_SIZE", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSize)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LLM_TIMEOUT", "5s")
	t.Setenv("MAX_FILE_SIZE", "1024")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(1024), cfg.Upload.MaxFileSize)
}

func TestValidate_RequiresGeminiKey(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.Gemini.APIKey = "key"
	require.NoError(t, cfg.Validate())
}
