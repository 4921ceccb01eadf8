package handlers

import (
	"net/http"
	"strings"

	"confdesk/core/planning"
	"confdesk/core/store"
	"confdesk/core/utils"
)

type TasksHandler struct {
	svc    *planning.Service
	logger *utils.Logger
}

func NewTasksHandler(svc *planning.Service, logger *utils.Logger) *TasksHandler {
	return &TasksHandler{svc: svc, logger: logger}
}

// List serves GET /conferences/{id}/tasks.
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	filter := store.TaskFilter{
		Group:  strings.TrimSpace(q.Get("group")),
		Status: strings.TrimSpace(q.Get("status")),
	}
	items, err := h.svc.ListTasks(r.Context(), id, filter)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Create serves POST /conferences/{id}/tasks.
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var payload planning.TaskInput
	if !decodeBody(w, r, &payload) {
		return
	}
	t, err := h.svc.CreateTask(r.Context(), id, payload)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *TasksHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	t, err := h.svc.PatchTask(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteTask(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeOK(w)
}

func (h *TasksHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var payload planning.AssignInput
	if !decodeBody(w, r, &payload) {
		return
	}
	a, err := h.svc.AssignTask(r.Context(), id, payload)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (h *TasksHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	items, err := h.svc.ListAssignments(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Unassign serves DELETE /assignments/{id}.
func (h *TasksHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Unassign(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeOK(w)
}
