package roles

import (
	"context"
	"path/filepath"
	"testing"

	"confdesk/config"
	"confdesk/core/store"
	"confdesk/core/utils"
)

func setupRoleStore(t *testing.T) store.RoleTemplatesStore {
	t.Helper()
	cfg := &config.AppConfig{DBDriver: config.DriverSQLite, DBURL: filepath.Join(t.TempDir(), "roles.db")}
	logger := utils.NewLoggerTo(nil)
	db, err := store.NewDB(cfg, logger)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := store.ApplyMigrations(context.Background(), db, cfg.DBDriver, logger); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	return store.NewRoleTemplatesStore(db)
}

func TestEnsureDefaultsSeedsOnlyEmptyTable(t *testing.T) {
	s := setupRoleStore(t)
	ctx := context.Background()
	res, err := EnsureDefaults(ctx, s)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !res.Seeded || res.Count != len(Defaults) {
		t.Fatalf("unexpected first seed %+v", res)
	}
	res, err = EnsureDefaults(ctx, s)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if res.Seeded {
		t.Fatalf("expected no-op on populated table, got %+v", res)
	}
	items, err := s.ListRoleTemplates(ctx)
	if err != nil || len(items) != 10 {
		t.Fatalf("expected 10 templates, got %d %v", len(items), err)
	}
	if items[0].Key != "chair" || items[9].Key != "staff" {
		t.Fatalf("unexpected order: first %s last %s", items[0].Key, items[9].Key)
	}
}

func TestEnsureDefaultsSkipsNothingWhenTablePopulated(t *testing.T) {
	s := setupRoleStore(t)
	ctx := context.Background()
	if _, err := s.CreateRoleTemplate(ctx, &store.RoleTemplate{Key: "custom", Label: "Custom", SortOrder: 5}); err != nil {
		t.Fatalf("create: %v", err)
	}
	res, err := EnsureDefaults(ctx, s)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if res.Seeded || res.Count != 1 {
		t.Fatalf("unexpected %+v", res)
	}
}

func TestEnsureCreatesUnknownKeyLast(t *testing.T) {
	s := setupRoleStore(t)
	ctx := context.Background()
	if _, err := EnsureDefaults(ctx, s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	created, err := Ensure(ctx, s, "translator")
	if err != nil || !created {
		t.Fatalf("ensure: %v %v", created, err)
	}
	created, err = Ensure(ctx, s, "translator")
	if err != nil || created {
		t.Fatalf("ensure again: %v %v", created, err)
	}
	created, err = Ensure(ctx, s, "chair")
	if err != nil || created {
		t.Fatalf("existing key must not be recreated: %v %v", created, err)
	}
	items, err := s.ListRoleTemplates(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	last := items[len(items)-1]
	if last.Key != "translator" || last.Label != "translator" || last.SortOrder != store.AutoRoleSortOrder {
		t.Fatalf("unexpected auto role %+v", last)
	}
}

func TestResolverFallsBackToKey(t *testing.T) {
	r := NewResolver([]store.RoleTemplate{{Key: "chair", Label: "조직위원장"}})
	if got := r.Label("chair"); got != "조직위원장" {
		t.Fatalf("chair: %s", got)
	}
	if got := r.Label("ghost"); got != "ghost" {
		t.Fatalf("ghost: %s", got)
	}
	var nilResolver *Resolver
	if got := nilResolver.Label("x"); got != "x" {
		t.Fatalf("nil resolver: %s", got)
	}
}

func TestLabelLooksUpStore(t *testing.T) {
	s := setupRoleStore(t)
	ctx := context.Background()
	if _, err := EnsureDefaults(ctx, s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got, err := Label(ctx, s, "pr"); err != nil || got != "홍보" {
		t.Fatalf("pr: %q %v", got, err)
	}
	if got, err := Label(ctx, s, "deleted_role"); err != nil || got != "deleted_role" {
		t.Fatalf("fallback: %q %v", got, err)
	}
}

func TestNormalizeKey(t *testing.T) {
	if NormalizeKey("  ") != "chair" || NormalizeKey(" pr ") != "pr" {
		t.Fatalf("unexpected normalization")
	}
}
