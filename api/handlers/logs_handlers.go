package handlers

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"confdesk/core/planning"
	"confdesk/core/utils"
)

// LogsHandler serves a conference's audit trail.
type LogsHandler struct {
	svc    *planning.Service
	logger *utils.Logger
}

func NewLogsHandler(svc *planning.Service, logger *utils.Logger) *LogsHandler {
	return &LogsHandler{svc: svc, logger: logger}
}

func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListAudit(r.Context(), id, parseLimit(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *LogsHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListAudit(r.Context(), id, parseLimit(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	filename := "audit_" + strconv.FormatInt(id, 10) + "_" + time.Now().UTC().Format("20060102_150405") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"time", "entity_type", "entity_id", "action", "before", "after"})
	for i := range items {
		_ = writer.Write([]string{
			items[i].CreatedAt.UTC().Format(time.RFC3339),
			strings.TrimSpace(items[i].EntityType),
			strconv.FormatInt(items[i].EntityID, 10),
			strings.TrimSpace(items[i].Action),
			items[i].BeforeJSON,
			items[i].AfterJSON,
		})
	}
	writer.Flush()
}

// parseLimit returns 0 for a missing or malformed limit so the configured default applies.
func parseLimit(r *http.Request) int {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
