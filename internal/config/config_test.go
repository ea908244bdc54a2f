package config

import (
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PROJECTEVAL_HOST", "")
	t.Setenv("PROJECTEVAL_PORT", "")
	t.Setenv("PROJECTEVAL_DATA_DIR", "")
	t.Setenv("PROJECTEVAL_DB_NAME", "")
	t.Setenv("PROJECTEVAL_LOG_DIR", "")
	t.Setenv("PROJECTEVAL_LOG_LEVEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 8000 {
		t.Errorf("default addr: got %s", cfg.Addr())
	}
	if cfg.DBName != "projects.db" {
		t.Errorf("default db name: got %s", cfg.DBName)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level: got %s", cfg.LogLevel)
	}
	if cfg.LogDir != filepath.Join(cfg.DataDir, "logs") {
		t.Errorf("default log dir: got %s", cfg.LogDir)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PROJECTEVAL_HOST", "0.0.0.0")
	t.Setenv("PROJECTEVAL_PORT", "9100")
	t.Setenv("PROJECTEVAL_DATA_DIR", "/tmp/projecteval")
	t.Setenv("PROJECTEVAL_DB_NAME", "eval.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:9100" {
		t.Errorf("addr: got %s", cfg.Addr())
	}
	if cfg.DBPath() != filepath.Join("/tmp/projecteval", "eval.db") {
		t.Errorf("db path: got %s", cfg.DBPath())
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "-1", "70000"} {
		t.Setenv("PROJECTEVAL_PORT", port)
		if _, err := Load(); err == nil {
			t.Errorf("port %q: expected error", port)
		}
	}
}
