package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
site:
  name: Bluestock
  supportEmail: support@bluestock.com
server:
  listen: ":9000"
  redisAddr: "localhost:6379"
  redisDB: 2
  sessionSecret: "test-secret"
  sessionTTLMinutes: 60
  seedData: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Site.Name != "Bluestock" {
		t.Errorf("site name = %q", cfg.Site.Name)
	}
	if cfg.Server.Listen != ":9000" {
		t.Errorf("listen = %q", cfg.Server.Listen)
	}
	if cfg.Server.RedisDB != 2 {
		t.Errorf("redisDB = %d", cfg.Server.RedisDB)
	}
	if !cfg.Server.SeedData {
		t.Error("seedData not set")
	}
	if cfg.Server.SessionTTL() != time.Hour {
		t.Errorf("session ttl = %s", cfg.Server.SessionTTL())
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  redisAddr: localhost:6379\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Listen != ":8000" {
		t.Errorf("default listen = %q", cfg.Server.Listen)
	}
	if cfg.Server.SessionTTL() != 24*time.Hour {
		t.Errorf("default session ttl = %s", cfg.Server.SessionTTL())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
