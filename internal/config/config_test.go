package config

import (
	"path/filepath"
	"testing"

	"github.com/ytget/ytfetch/internal/platform"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Expected default addr ':8080', got %s", cfg.Addr)
	}
	if home, err := platform.GetHomeDownloadsDir(); err == nil {
		if cfg.DownloadDir != home {
			t.Errorf("Expected default download dir %s, got %s", home, cfg.DownloadDir)
		}
		if filepath.Base(cfg.DownloadDir) != "Downloads" {
			t.Errorf("Expected home Downloads folder, got %s", cfg.DownloadDir)
		}
	} else if cfg.DownloadDir != "./downloads" {
		t.Errorf("Expected fallback download dir './downloads', got %s", cfg.DownloadDir)
	}
	if cfg.ConcurrentFragments != 3 || cfg.Retries != 3 {
		t.Errorf("Expected default tuning 3/3, got %d/%d", cfg.ConcurrentFragments, cfg.Retries)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("YTFETCH_ADDR", ":9000")
	t.Setenv("YTFETCH_DOWNLOAD_DIR", "/data/media")
	t.Setenv("YTFETCH_CONCURRENT_FRAGMENTS", "5")
	t.Setenv("YTFETCH_RETRIES", "7")

	cfg := Load()

	if cfg.Addr != ":9000" {
		t.Errorf("Expected addr ':9000', got %s", cfg.Addr)
	}
	if cfg.DownloadDir != "/data/media" {
		t.Errorf("Expected download dir '/data/media', got %s", cfg.DownloadDir)
	}
	if cfg.ConcurrentFragments != 5 {
		t.Errorf("Expected 5 concurrent fragments, got %d", cfg.ConcurrentFragments)
	}
	if cfg.Retries != 7 {
		t.Errorf("Expected 7 retries, got %d", cfg.Retries)
	}
}

func TestLoad_InvalidIntsFallBack(t *testing.T) {
	t.Setenv("YTFETCH_CONCURRENT_FRAGMENTS", "many")
	t.Setenv("YTFETCH_RETRIES", "-2")

	cfg := Load()

	if cfg.ConcurrentFragments != 3 {
		t.Errorf("Expected fallback to 3 fragments, got %d", cfg.ConcurrentFragments)
	}
	if cfg.Retries != 3 {
		t.Errorf("Expected fallback to 3 retries, got %d", cfg.Retries)
	}
}
