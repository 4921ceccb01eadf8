package handlers

import (
	"net/http"
	"strings"

	"confdesk/core/planning"
	"confdesk/core/store"
	"confdesk/core/utils"
)

const adminPasswordHeader = "X-Admin-Password"

type ConferencesHandler struct {
	svc    *planning.Service
	logger *utils.Logger
}

func NewConferencesHandler(svc *planning.Service, logger *utils.Logger) *ConferencesHandler {
	return &ConferencesHandler{svc: svc, logger: logger}
}

func (h *ConferencesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListConferences(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *ConferencesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload planning.ConferenceInput
	if !decodeBody(w, r, &payload) {
		return
	}
	c, err := h.svc.CreateConference(r.Context(), payload)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *ConferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetConference(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ConferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	c, err := h.svc.UpdateConference(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ConferencesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteConference(r.Context(), id, r.Header.Get(adminPasswordHeader)); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *ConferencesHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var today store.Date
	if raw := strings.TrimSpace(r.URL.Query().Get("today")); raw != "" {
		d, err := store.ParseDate(raw)
		if err != nil || d == nil {
			writeErrorBody(w, http.StatusBadRequest, "validation.date", "today", "invalid date, expected YYYY-MM-DD")
			return
		}
		today = *d
	}
	summary, err := h.svc.Summary(r.Context(), id, today)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *ConferencesHandler) GenerateMilestones(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := h.svc.GenerateMilestones(r.Context(), id, queryBool(r, "create_default_tasks", true))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *ConferencesHandler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListMilestones(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}
