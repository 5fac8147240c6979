package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Settings holds the dashboard configuration, read once at startup.
type Settings struct {
	// Base URL of the remote store API, no trailing slash.
	APIBaseURL string
	// Address the dashboard listens on.
	ListenAddr string
	// Path of the cached session token file.
	TokenFile string
	// Per-request timeout for store API calls.
	RequestTimeout time.Duration
}

// Load reads settings from the environment, falling back to
// development defaults.
func Load() *Settings {
	s := &Settings{
		APIBaseURL:     getEnv("STORE_API_URL", "http://localhost:8000"),
		ListenAddr:     getEnv("LISTEN_ADDR", ":8081"),
		TokenFile:      getEnv("TOKEN_FILE", defaultTokenFile()),
		RequestTimeout: 30 * time.Second,
	}

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			log.Printf("⚠️  invalid REQUEST_TIMEOUT_SECONDS %q, keeping %s", v, s.RequestTimeout)
		} else {
			s.RequestTimeout = time.Duration(secs) * time.Second
		}
	}

	return s
}

// defaultTokenFile places the single token slot under the user config
// dir, keyed by a fixed name.
func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "admin_token")
	}
	return filepath.Join(dir, "neonstore-admin", "admin_token")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
