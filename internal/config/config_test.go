package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port())
	assert.False(t, c.Debug())
	assert.Equal(t, "http://localhost:8080", c.BaseURL())
	assert.Equal(t, []string{"2025", "2024", "2023", "2022"}, c.Years())
	assert.Equal(t, "2025", c.DefaultYear())
	assert.Equal(t, "www.youtube.com", c.EmbedHost())
	assert.Empty(t, c.DataFile())
}

func TestLoad_FileThenEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), "conf.ini")
	content := `[Server]
Port = 9090
Debug = true

[Site]
BaseURL = https://gallery.example.com/

[Gallery]
Years = 2024, 2023
DefaultYear = 2024
`
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	t.Setenv("GALLERY_SERVER_PORT", "7070")

	c, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "7070", c.Port())
	assert.True(t, c.Debug())
	assert.Equal(t, "https://gallery.example.com", c.BaseURL())
	assert.Equal(t, []string{"2024", "2023"}, c.Years())
	assert.Equal(t, "2024", c.DefaultYear())
	assert.Equal(t, "www.youtube.com", c.EmbedHost())
}

func TestLoad_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "conf.ini")
	require.NoError(t, os.WriteFile(p, []byte("[Server\nPort = 1\n"), 0o644))
	_, err := Load(p)
	assert.Error(t, err)
}

func TestSetOverrides(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	c.Set(KeyServerPort, "1234")
	assert.Equal(t, "1234", c.Port())
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "GALLERY_GALLERY_DATAFILE", EnvName(KeyGalleryDataFile))
	assert.Equal(t, "GALLERY_SERVER_PORT", EnvName(KeyServerPort))
}

func TestLoad_LogsEnvOverride(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	defer slog.SetDefault(prev)

	t.Setenv("GALLERY_GALLERY_EMBEDHOST", "www.youtube-nocookie.com")
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "www.youtube-nocookie.com", c.EmbedHost())
	assert.Contains(t, buf.String(), "config overridden from env")
	assert.Contains(t, buf.String(), "GALLERY_GALLERY_EMBEDHOST")
}
