package planning

import (
	"context"
	"database/sql"

	"confdesk/config"
	"confdesk/core/audit"
	"confdesk/core/rbac"
	"confdesk/core/store"
	"confdesk/core/utils"
)

// Service runs every conference-planning operation. Each mutation, together
// with its audit row, commits in one transaction or not at all.
type Service struct {
	db     *sql.DB
	gate   *rbac.Gate
	cfg    *config.AppConfig
	logger *utils.Logger
}

func NewService(db *sql.DB, gate *rbac.Gate, cfg *config.AppConfig, logger *utils.Logger) *Service {
	return &Service{db: db, gate: gate, cfg: cfg, logger: logger}
}

// read exposes the stores directly on the pool for read-only operations.
func (s *Service) read() *store.Repos {
	return store.NewRepos(s.db)
}

// mutate runs fn with stores and an audit recorder bound to a single transaction.
func (s *Service) mutate(ctx context.Context, fn func(r *store.Repos, rec *audit.Recorder) error) error {
	return store.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repos := store.NewRepos(tx)
		return fn(repos, audit.NewRecorder(repos.Audits))
	})
}
