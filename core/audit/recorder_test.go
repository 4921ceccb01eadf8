package audit

import (
	"context"
	"path/filepath"
	"testing"

	"confdesk/config"
	"confdesk/core/store"
	"confdesk/core/utils"
)

func TestTaskPatchAction(t *testing.T) {
	cases := []struct {
		touched []string
		want    string
	}{
		{nil, ActionUpdate},
		{[]string{"name", "priority"}, ActionUpdate},
		{[]string{"status"}, ActionUpdateStatus},
		{[]string{"due_date"}, ActionUpdateDates},
		{[]string{"start_date", "name"}, ActionUpdateDates},
		{[]string{"status", "due_date"}, ActionUpdateDates},
	}
	for _, tc := range cases {
		touched := map[string]bool{}
		for _, k := range tc.touched {
			touched[k] = true
		}
		if got := TaskPatchAction(touched); got != tc.want {
			t.Fatalf("%v: expected %s, got %s", tc.touched, tc.want, got)
		}
	}
}

func TestRecorderAppendsEncodedSnapshots(t *testing.T) {
	cfg := &config.AppConfig{DBDriver: config.DriverSQLite, DBURL: filepath.Join(t.TempDir(), "audit.db")}
	logger := utils.NewLoggerTo(nil)
	db, err := store.NewDB(cfg, logger)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	defer db.Close()
	ctx := context.Background()
	if _, err := store.ApplyMigrations(ctx, db, cfg.DBDriver, logger); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	repos := store.NewRepos(db)
	conf := &store.Conference{Year: 2026, Name: "ACME", StartDate: store.MustParseDate("2026-04-08"), EndDate: store.MustParseDate("2026-04-10"), Timezone: store.DefaultTimezone, Status: store.DefaultConferenceStatus}
	if _, err := repos.Conferences.CreateConference(ctx, conf); err != nil {
		t.Fatalf("conference: %v", err)
	}
	rec := NewRecorder(repos.Audits)
	row, err := rec.Record(ctx, Entry{
		ConferenceID: conf.ID,
		EntityType:   EntityTask,
		EntityID:     42,
		Action:       ActionAssign,
		Before:       map[string]any{"assignees": []any{}},
		After:        map[string]any{"assignees": []any{map[string]any{"person_id": 3, "responsibility": "chair"}}},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if row.ID == 0 || row.ActorPersonID != nil {
		t.Fatalf("unexpected row %+v", row)
	}
	items, err := repos.Audits.ListAudit(ctx, conf.ID, 10)
	if err != nil || len(items) != 1 {
		t.Fatalf("list: %v %v", items, err)
	}
	if items[0].BeforeJSON != `{"assignees":[]}` {
		t.Fatalf("before: %s", items[0].BeforeJSON)
	}
	if items[0].AfterJSON != `{"assignees":[{"person_id":3,"responsibility":"chair"}]}` {
		t.Fatalf("after: %s", items[0].AfterJSON)
	}
}
