package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[server]
addr = "127.0.0.1:8000"

[db]
host = "dbhost"
port = "5433"
user = "u"
pass = "p"
name = "n"
sslmode = "disable"

[jwt]
secret = "s3cret"
expires_in = 3600
signing_method = "HS256"

[redis]
host = "redishost"
port = 6380
dial_timeout = 3
read_timeout = 4

[assets]
static_root = "restaurant/static"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:8000" {
		t.Errorf("Expected server addr '127.0.0.1:8000', got '%s'", cfg.Server.Addr)
	}
	if cfg.DB.Host != "dbhost" {
		t.Errorf("Expected db host 'dbhost', got '%s'", cfg.DB.Host)
	}
	if cfg.DB.Port != "5433" {
		t.Errorf("Expected db port '5433', got '%s'", cfg.DB.Port)
	}
	if cfg.JWT.Secret != "s3cret" {
		t.Errorf("Expected jwt secret 's3cret', got '%s'", cfg.JWT.Secret)
	}
	if cfg.JWT.ExpiresIn != 3600 {
		t.Errorf("Expected jwt expires_in 3600, got %d", cfg.JWT.ExpiresIn)
	}
	if cfg.Redis.Port != 6380 {
		t.Errorf("Expected redis port 6380, got %d", cfg.Redis.Port)
	}
	if cfg.Assets.StaticRoot != "restaurant/static" {
		t.Errorf("Expected static root 'restaurant/static', got '%s'", cfg.Assets.StaticRoot)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadBadToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed toml")
	}
}
