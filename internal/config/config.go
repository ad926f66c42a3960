package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// Known configuration keys.
const (
	KeyServerPort         = "Server.Port"
	KeyServerDebug        = "Server.Debug"
	KeySiteBaseURL        = "Site.BaseURL"
	KeyGalleryYears       = "Gallery.Years"
	KeyGalleryDefaultYear = "Gallery.DefaultYear"
	KeyGalleryEmbedHost   = "Gallery.EmbedHost"
	KeyGalleryDataFile    = "Gallery.DataFile"
)

// EnvPrefix prefixes every environment override, e.g. GALLERY_SERVER_PORT.
const EnvPrefix = "GALLERY"

var allKeys = []string{
	KeyServerPort, KeyServerDebug,
	KeySiteBaseURL,
	KeyGalleryYears, KeyGalleryDefaultYear, KeyGalleryEmbedHost, KeyGalleryDataFile,
}

var defaults = map[string]any{
	KeyServerPort:         "8080",
	KeyServerDebug:        false,
	KeySiteBaseURL:        "http://localhost:8080",
	KeyGalleryYears:       "2025,2024,2023,2022",
	KeyGalleryDefaultYear: "2025",
	KeyGalleryEmbedHost:   "www.youtube.com",
	KeyGalleryDataFile:    "",
}

// Config is the resolved application configuration.
type Config struct {
	vp *viper.Viper
}

// Load builds the configuration from defaults, the ini file at path (if it
// exists) and GALLERY_* environment variables, in increasing precedence.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	vp := viper.New()
	for k, v := range defaults {
		vp.SetDefault(k, v)
	}

	if path != "" {
		f, err := ini.Load(path)
		switch {
		case err == nil:
			for _, section := range f.Sections() {
				for _, key := range section.Keys() {
					k := section.Name() + "." + key.Name()
					if section.Name() == ini.DefaultSection {
						k = key.Name()
					}
					vp.Set(k, key.Value())
				}
			}
			slog.Info("config file loaded", "path", path)
		case errors.Is(err, os.ErrNotExist):
			slog.Info("config file not found, using defaults", "path", path)
		default:
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	for _, key := range allKeys {
		if v, ok := os.LookupEnv(EnvName(key)); ok {
			vp.Set(key, v)
			slog.Info("config overridden from env", "key", key, "env", EnvName(key))
		}
	}
	return &Config{vp: vp}, nil
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Set overrides key, e.g. from a command-line flag.
func (c *Config) Set(key string, value any) { c.vp.Set(key, value) }

// GetString returns key as a trimmed string.
func (c *Config) GetString(key string) string { return strings.TrimSpace(c.vp.GetString(key)) }

// GetBool returns key as a boolean.
func (c *Config) GetBool(key string) bool { return c.vp.GetBool(key) }

// Port is the HTTP listen port.
func (c *Config) Port() string { return c.GetString(KeyServerPort) }

// Debug enables debug logging and gin debug mode.
func (c *Config) Debug() bool { return c.GetBool(KeyServerDebug) }

// BaseURL is the public origin used for absolute links, without a trailing slash.
func (c *Config) BaseURL() string { return strings.TrimRight(c.GetString(KeySiteBaseURL), "/") }

// Years is the fixed list of gallery tabs.
func (c *Config) Years() []string {
	var out []string
	for _, y := range strings.Split(c.GetString(KeyGalleryYears), ",") {
		if y = strings.TrimSpace(y); y != "" {
			out = append(out, y)
		}
	}
	return out
}

// DefaultYear is the tab shown first.
func (c *Config) DefaultYear() string { return c.GetString(KeyGalleryDefaultYear) }

// EmbedHost is the host of the embedded player.
func (c *Config) EmbedHost() string { return c.GetString(KeyGalleryEmbedHost) }

// DataFile is an external catalog to use instead of the embedded one.
func (c *Config) DataFile() string { return c.GetString(KeyGalleryDataFile) }
