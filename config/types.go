package config

import (
	"strings"
	"time"
)

type AppConfig struct {
	DBDriver        string        `yaml:"db_driver" env:"CONFDESK_DB_DRIVER" env-default:"sqlite"`
	DBURL           string        `yaml:"db_url" env:"CONFDESK_DB_URL" env-default:"data/confdesk.db"`
	ListenAddr      string        `yaml:"listen_addr" env:"CONFDESK_LISTEN_ADDR" env-default:"0.0.0.0:8080"`
	AppEnv          string        `yaml:"app_env" env:"CONFDESK_APP_ENV"`
	AdminPassword   string        `yaml:"admin_password" env:"ADMIN_PASSWORD"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"CONFDESK_SHUTDOWN_TIMEOUT" env-default:"10s"`
	CORS            CORSConfig    `yaml:"cors"`
	Audit           AuditConfig   `yaml:"audit"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CONFDESK_CORS_ORIGINS" env-separator:"," env-default:"*"`
}

type AuditConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"CONFDESK_AUDIT_DEFAULT_LIMIT" env-default:"200"`
	MaxLimit     int `yaml:"max_limit" env:"CONFDESK_AUDIT_MAX_LIMIT" env-default:"5000"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// AdminSecret is the trimmed admin password. Empty means the gate is not configured.
func (c *AppConfig) AdminSecret() string {
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.AdminPassword)
}

func (c *AppConfig) IsPostgres() bool {
	if c == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(c.DBDriver)) {
	case DriverPostgres, "pgx", "postgresql":
		return true
	}
	return false
}

func (c *AppConfig) EffectiveAuditLimit(requested int) int {
	def, max := 200, 5000
	if c != nil && c.Audit.DefaultLimit > 0 {
		def = c.Audit.DefaultLimit
	}
	if c != nil && c.Audit.MaxLimit > 0 {
		max = c.Audit.MaxLimit
	}
	limit := requested
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return limit
}

func (c *AppConfig) AllowsOrigin(origin string) bool {
	if c == nil {
		return false
	}
	for _, raw := range c.CORS.AllowedOrigins {
		v := strings.TrimSpace(raw)
		if v == "*" || (v != "" && strings.EqualFold(v, origin)) {
			return true
		}
	}
	return false
}
