// Package config loads server settings from the environment with sane
// defaults, so the binary runs with zero configuration.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/ytget/ytfetch/internal/platform"
)

// Config carries all runtime settings.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// DownloadDir is the base directory downloads land in. Defaults to the
	// user's home Downloads folder; created on first use if missing.
	DownloadDir string

	// ConcurrentFragments and Retries are handed to the engine per job.
	ConcurrentFragments int
	Retries             int
}

const (
	defaultAddr                = ":8080"
	fallbackDownloadDir        = "./downloads"
	defaultConcurrentFragments = 3
	defaultRetries             = 3
)

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Addr:                getEnv("YTFETCH_ADDR", defaultAddr),
		DownloadDir:         getEnv("YTFETCH_DOWNLOAD_DIR", defaultDownloadDir()),
		ConcurrentFragments: getEnvInt("YTFETCH_CONCURRENT_FRAGMENTS", defaultConcurrentFragments),
		Retries:             getEnvInt("YTFETCH_RETRIES", defaultRetries),
	}
}

// defaultDownloadDir resolves the user's Downloads folder, falling back to
// a relative directory when the home directory cannot be determined.
func defaultDownloadDir() string {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return fallbackDownloadDir
	}
	return dir
}

// getEnv returns the environment value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}
