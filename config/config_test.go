package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromEnvAppliesDefaults(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "  hunter2 ")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBDriver != DriverSQLite || cfg.DBURL != "data/confdesk.db" {
		t.Fatalf("unexpected db defaults %q %q", cfg.DBDriver, cfg.DBURL)
	}
	if cfg.ListenAddr != "0.0.0.0:8080" || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected server defaults %q %v", cfg.ListenAddr, cfg.ShutdownTimeout)
	}
	if cfg.AdminSecret() != "hunter2" {
		t.Fatalf("admin secret not trimmed: %q", cfg.AdminSecret())
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "confdesk.yaml")
	body := "db_driver: postgres\ndb_url: postgres://u:p@localhost/confdesk\ncors:\n  allowed_origins: [\"https://admin.example.org\"]\naudit:\n  default_limit: 50\n  max_limit: 100\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.IsPostgres() {
		t.Fatalf("expected postgres driver")
	}
	if !cfg.AllowsOrigin("https://admin.example.org") || cfg.AllowsOrigin("https://evil.example.org") {
		t.Fatalf("unexpected origin policy %v", cfg.CORS.AllowedOrigins)
	}
	if got := cfg.EffectiveAuditLimit(0); got != 50 {
		t.Fatalf("default limit: %d", got)
	}
	if got := cfg.EffectiveAuditLimit(1000); got != 100 {
		t.Fatalf("max limit: %d", got)
	}
}

func TestEffectiveAuditLimitFallbacks(t *testing.T) {
	var nilCfg *AppConfig
	if got := nilCfg.EffectiveAuditLimit(-1); got != 200 {
		t.Fatalf("nil default: %d", got)
	}
	cfg := &AppConfig{}
	if got := cfg.EffectiveAuditLimit(9999); got != 5000 {
		t.Fatalf("cap: %d", got)
	}
	if got := cfg.EffectiveAuditLimit(10); got != 10 {
		t.Fatalf("passthrough: %d", got)
	}
}

func TestIsPostgresAliases(t *testing.T) {
	for _, driver := range []string{"postgres", "PGX", " postgresql "} {
		if !(&AppConfig{DBDriver: driver}).IsPostgres() {
			t.Fatalf("%q should be postgres", driver)
		}
	}
	if (&AppConfig{DBDriver: "sqlite"}).IsPostgres() {
		t.Fatalf("sqlite is not postgres")
	}
}

func TestAllowsOriginWildcard(t *testing.T) {
	cfg := &AppConfig{CORS: CORSConfig{AllowedOrigins: []string{"*"}}}
	if !cfg.AllowsOrigin("http://localhost:5173") {
		t.Fatalf("wildcard should allow any origin")
	}
	if (&AppConfig{}).AllowsOrigin("http://localhost:5173") {
		t.Fatalf("empty list should deny")
	}
}
