package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://override:27017")
	t.Setenv("REDIS_ADDR", "override:6379")
	t.Setenv("RECORDACCEL_PAGE_SIZE", "14")

	cfgPath := writeConfig(t, `
port: "8080"
logLevel: "info"
mongoURI: "mongodb://localhost:27017"
mongoDatabase: "recordaccel"
redisAddr: "localhost:6379"
pageSize: 7
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MongoURI != "mongodb://override:27017" {
		t.Fatalf("mongoURI = %q, want override", cfg.MongoURI)
	}
	if cfg.RedisAddr != "override:6379" {
		t.Fatalf("redisAddr = %q, want override", cfg.RedisAddr)
	}
	if cfg.PageSize != 14 {
		t.Fatalf("pageSize = %d, want 14", cfg.PageSize)
	}
	if cfg.MongoCollection != "samples" {
		t.Fatalf("mongoCollection = %q, want default %q", cfg.MongoCollection, "samples")
	}
}

func TestLoadRejectsMissingMongoURI(t *testing.T) {
	cfgPath := writeConfig(t, `
port: "8080"
mongoDatabase: "recordaccel"
redisAddr: "localhost:6379"
`)
	if _, err := Load(cfgPath); err == nil {
		t.Fatalf("Load() expected error for missing mongoURI")
	}
}

func TestValidateConfigRejectsNegativePageSize(t *testing.T) {
	cfg := FileConfig{
		Port:          "8080",
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "recordaccel",
		RedisAddr:     "localhost:6379",
		PageSize:      -1,
	}
	if err := validateConfig(cfg); err == nil {
		t.Fatalf("validateConfig() expected error for negative pageSize")
	}
}
