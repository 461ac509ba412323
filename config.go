package cryptodash

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	envAPIURL   = "CRYPTODASH_API_URL"
	envPriceURL = "CRYPTODASH_PRICE_API_URL"
	envHome     = "CRYPTODASH_HOME"

	defaultAPIURL   = "http://localhost:5000"
	defaultPriceURL = "https://api.coingecko.com/api/v3"
)

// Config holds the process configuration, resolved once at startup.
type Config struct {
	// APIURL is the backend origin, without trailing slash.
	APIURL string
	// PriceAPIURL is the historical price provider origin.
	PriceAPIURL string
	// Home is the directory holding client state (the session file).
	Home string
}

// LoadConfig reads configuration from a .env file (best effort) and the
// environment, falling back to defaults.
func LoadConfig() Config {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{
		APIURL:      os.Getenv(envAPIURL),
		PriceAPIURL: os.Getenv(envPriceURL),
		Home:        os.Getenv(envHome),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.PriceAPIURL == "" {
		cfg.PriceAPIURL = defaultPriceURL
	}
	if cfg.Home == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.Home = filepath.Join(dir, "cryptodash")
		} else {
			cfg.Home = filepath.Join(os.TempDir(), "cryptodash")
		}
	}
	return cfg
}

// SessionPath returns the path of the persisted session file.
func (c Config) SessionPath() string { return filepath.Join(c.Home, "session.json") }
