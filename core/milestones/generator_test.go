package milestones

import (
	"context"
	"path/filepath"
	"testing"

	"confdesk/config"
	"confdesk/core/store"
	"confdesk/core/utils"
)

func TestPlanDatesEveryTemplateEntry(t *testing.T) {
	start := store.MustParseDate("2026-04-08")
	plan := Plan(1, start, DefaultTemplate)
	if len(plan) != 16 {
		t.Fatalf("expected 16 milestones, got %d", len(plan))
	}
	byKey := map[string]store.Milestone{}
	for i, m := range plan {
		if i > 0 && m.TargetDate.Before(plan[i-1].TargetDate) {
			t.Fatalf("plan not sorted at %d: %s before %s", i, m.TargetDate, plan[i-1].TargetDate)
		}
		if !m.TargetDate.Equal(start.AddDays(m.RelativeDays)) {
			t.Fatalf("%s: target %s does not match offset %d", m.Key, m.TargetDate, m.RelativeDays)
		}
		if m.Locked {
			t.Fatalf("%s: expected unlocked", m.Key)
		}
		byKey[m.Key] = m
	}
	if byKey["M_0"].TargetDate.String() != "2026-04-08" {
		t.Fatalf("M_0: %s", byKey["M_0"].TargetDate)
	}
	if byKey["M_90"].TargetDate.String() != "2026-01-08" {
		t.Fatalf("M_90: %s", byKey["M_90"].TargetDate)
	}
	if byKey["P_+30"].TargetDate.String() != "2026-05-08" {
		t.Fatalf("P_+30: %s", byKey["P_+30"].TargetDate)
	}
}

func TestPlanKeepsTemplateOrderOnTies(t *testing.T) {
	plan := Plan(1, store.MustParseDate("2026-04-08"), []Template{
		{Key: "late", RelativeDays: 5},
		{Key: "tie_a", RelativeDays: -1},
		{Key: "tie_b", RelativeDays: -1},
	})
	if plan[0].Key != "tie_a" || plan[1].Key != "tie_b" || plan[2].Key != "late" {
		t.Fatalf("unexpected order %v %v %v", plan[0].Key, plan[1].Key, plan[2].Key)
	}
}

func TestDefaultBacklog(t *testing.T) {
	tasks := DefaultBacklog(9, DefaultTasks)
	if len(tasks) != 13 {
		t.Fatalf("expected 13 tasks, got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.ConferenceID != 9 || task.Status != "todo" || task.Priority != "med" || task.TaskGroup == "" || task.Name == "" {
			t.Fatalf("unexpected task %+v", task)
		}
	}
}

func TestGenerateReplacesMilestonesAndAppendsTasks(t *testing.T) {
	cfg := &config.AppConfig{DBDriver: config.DriverSQLite, DBURL: filepath.Join(t.TempDir(), "gen.db")}
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
	for i := 0; i < 2; i++ {
		ms, err := Generate(ctx, repos, conf, true)
		if err != nil {
			t.Fatalf("generate %d: %v", i, err)
		}
		if len(ms) != 16 {
			t.Fatalf("run %d: expected 16 milestones, got %d", i, len(ms))
		}
	}
	tasks, err := repos.Tasks.ListTasks(ctx, conf.ID, store.TaskFilter{})
	if err != nil {
		t.Fatalf("tasks: %v", err)
	}
	if len(tasks) != 26 {
		t.Fatalf("default tasks append on every run: expected 26, got %d", len(tasks))
	}
	if _, err := Generate(ctx, repos, conf, false); err != nil {
		t.Fatalf("generate without tasks: %v", err)
	}
	tasks, _ = repos.Tasks.ListTasks(ctx, conf.ID, store.TaskFilter{})
	if len(tasks) != 26 {
		t.Fatalf("expected task count unchanged, got %d", len(tasks))
	}
}
