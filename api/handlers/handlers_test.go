package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"confdesk/config"
	"confdesk/core/planning"
	"confdesk/core/rbac"
	"confdesk/core/store"
	"confdesk/core/utils"

	"github.com/go-chi/chi/v5"
)

func withChiURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func setupHandlerService(t *testing.T) *planning.Service {
	t.Helper()
	cfg := &config.AppConfig{DBDriver: config.DriverSQLite, DBURL: filepath.Join(t.TempDir(), "handlers.db")}
	logger := utils.NewLoggerTo(nil)
	db, err := store.NewDB(cfg, logger)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := store.ApplyMigrations(context.Background(), db, cfg.DBDriver, logger); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	policy, err := rbac.NewPolicy(rbac.DefaultRoles())
	if err != nil {
		t.Fatalf("policy: %v", err)
	}
	return planning.NewService(db, rbac.NewGate("", policy), cfg, logger)
}

func TestPathIDRejectsNonNumeric(t *testing.T) {
	h := NewConferencesHandler(setupHandlerService(t), utils.NewLoggerTo(nil))
	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/conferences/abc", nil), "id", "abc")
	rr := httptest.NewRecorder()
	h.Get(rr, req)
	if rr.Code != http.StatusBadRequest || !strings.Contains(rr.Body.String(), "request.invalid_id") {
		t.Fatalf("expected invalid id, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestPathParamsFallsBackToSegments(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks/42/assignments", nil)
	if got := pathParams(req)["id"]; got != "42" {
		t.Fatalf("expected 42, got %q", got)
	}
}

func TestCreateRequiresBody(t *testing.T) {
	h := NewPeopleHandler(setupHandlerService(t), utils.NewLoggerTo(nil))
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/people", strings.NewReader("")))
	if rr.Code != http.StatusBadRequest || !strings.Contains(rr.Body.String(), "request.empty") {
		t.Fatalf("expected empty body error, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestSummaryHonoursTodayOverride(t *testing.T) {
	svc := setupHandlerService(t)
	if _, err := svc.CreateConference(context.Background(), planning.ConferenceInput{Year: 2026, Name: "ACME", StartDate: "2026-04-08", EndDate: "2026-04-10"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	h := NewConferencesHandler(svc, utils.NewLoggerTo(nil))

	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/conferences/1/summary?today=2026-04-01", nil), "id", "1")
	rr := httptest.NewRecorder()
	h.Summary(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("summary: %d %s", rr.Code, rr.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["days_to_event"] != float64(7) || body["next_milestone"] != nil {
		t.Fatalf("unexpected summary %v", body)
	}

	req = withChiURLParam(httptest.NewRequest(http.MethodGet, "/conferences/1/summary?today=tomorrow", nil), "id", "1")
	rr = httptest.NewRecorder()
	h.Summary(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad today, got %d", rr.Code)
	}
}

func TestUnknownConferenceIsNotFound(t *testing.T) {
	h := NewConferencesHandler(setupHandlerService(t), utils.NewLoggerTo(nil))
	req := withChiURLParam(httptest.NewRequest(http.MethodGet, "/conferences/9", nil), "id", "9")
	rr := httptest.NewRecorder()
	h.Get(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestQueryBoolDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x?create_default_tasks=false", nil)
	if queryBool(req, "create_default_tasks", true) {
		t.Fatalf("expected false")
	}
	if !queryBool(httptest.NewRequest(http.MethodPost, "/x", nil), "create_default_tasks", true) {
		t.Fatalf("expected default true")
	}
}

func TestParseLimit(t *testing.T) {
	for raw, want := range map[string]int{"": 0, "abc": 0, "-3": 0, "25": 25} {
		req := httptest.NewRequest(http.MethodGet, "/conferences/1/audit?limit="+raw, nil)
		if got := parseLimit(req); got != want {
			t.Fatalf("limit %q: got %d want %d", raw, got, want)
		}
	}
}
