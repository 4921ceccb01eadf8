package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"confdesk/config"
	"confdesk/core/utils"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

type gooseLogger struct {
	logger *utils.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.logger.Printf("MIGRATE "+format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...any) {
	l.logger.Errorf("MIGRATE "+format, v...)
}

func migrationTarget(driver string) (dialect, dir string) {
	cfg := &config.AppConfig{DBDriver: driver}
	if cfg.IsPostgres() {
		return "postgres", "migrations/postgres"
	}
	return "sqlite3", "migrations/sqlite"
}

// ApplyMigrations brings the schema up to date and returns the resulting goose version.
func ApplyMigrations(ctx context.Context, db *sql.DB, driver string, logger *utils.Logger) (int64, error) {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	dialect, dir := migrationTarget(driver)
	goose.SetBaseFS(migrationsFS)
	defer goose.SetBaseFS(nil)
	if logger != nil {
		goose.SetLogger(gooseLogger{logger: logger})
	} else {
		goose.SetLogger(goose.NopLogger())
	}
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("goose dialect %s: %w", dialect, err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("read migration version: %w", err)
	}
	return version, nil
}
