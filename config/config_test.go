package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTPServer.Port != 8080 {
			t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
		}
		if cfg.Catalog.Locale != "vi" {
			t.Errorf("expected default locale vi, got %q", cfg.Catalog.Locale)
		}
		if len(cfg.Catalog.PresetImages) != 10 {
			t.Errorf("expected 10 preset images, got %d", len(cfg.Catalog.PresetImages))
		}
		if cfg.Session.TTL != 24*time.Hour {
			t.Errorf("expected 24h session ttl, got %s", cfg.Session.TTL)
		}
	})

	t.Run("Env Override", func(t *testing.T) {
		viper.Reset()
		t.Setenv("HTTP_SERVER_PORT", "9090")
		t.Setenv("CATALOG_LOCALE", "en")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.HTTPServer.Port != 9090 {
			t.Errorf("expected port 9090, got %d", cfg.HTTPServer.Port)
		}
		if cfg.Catalog.Locale != "en" {
			t.Errorf("expected locale en, got %q", cfg.Catalog.Locale)
		}
	})

	t.Run("Invalid Port", func(t *testing.T) {
		viper.Reset()
		t.Setenv("HTTP_SERVER_PORT", "0")
		if _, err := Load(); err == nil {
			t.Errorf("expected error for zero port")
		}
	})
}
