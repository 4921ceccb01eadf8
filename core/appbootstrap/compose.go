package appbootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"confdesk/api"
	"confdesk/config"
	"confdesk/core/planning"
	"confdesk/core/rbac"
	"confdesk/core/store"
	"confdesk/core/utils"
)

type runtimeComposition struct {
	serverDeps api.ServerDeps
}

func composeRuntime(cfg *config.AppConfig, db *sql.DB, version string, logger *utils.Logger) (*runtimeComposition, error) {
	policy, err := rbac.NewPolicy(rbac.DefaultRoles())
	if err != nil {
		return nil, err
	}
	gate := rbac.NewGate(cfg.AdminSecret(), policy)
	if !gate.Configured() {
		logger.Printf("ADMIN_PASSWORD is not set; admin-gated operations will fail")
	}
	svc := planning.NewService(db, gate, cfg, logger)
	return &runtimeComposition{
		serverDeps: api.ServerDeps{
			DB:      db,
			Service: svc,
			Gate:    gate,
			Version: version,
		},
	}, nil
}

// OpenAndMigrate opens the configured database and brings its schema up to date.
func OpenAndMigrate(ctx context.Context, cfg *config.AppConfig, logger *utils.Logger) (*sql.DB, int64, error) {
	db, err := store.NewDB(cfg, logger)
	if err != nil {
		return nil, 0, err
	}
	version, err := store.ApplyMigrations(ctx, db, cfg.DBDriver, logger)
	if err != nil {
		_ = db.Close()
		return nil, 0, fmt.Errorf("migrate: %w", err)
	}
	return db, version, nil
}

// NewServer wires the HTTP server over an open database.
func NewServer(cfg *config.AppConfig, db *sql.DB, version string, logger *utils.Logger) (*api.Server, error) {
	comp, err := composeRuntime(cfg, db, version, logger)
	if err != nil {
		return nil, err
	}
	return api.NewServer(cfg, comp.serverDeps, logger), nil
}

// Run opens the store, migrates it and serves HTTP until ctx is done.
func Run(ctx context.Context, cfg *config.AppConfig, version string, logger *utils.Logger) error {
	db, schema, err := OpenAndMigrate(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Printf("schema version %d", schema)
	srv, err := NewServer(cfg, db, version, logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
