package handlers

import (
	"net/http"

	"confdesk/core/planning"
	"confdesk/core/utils"
)

type RoleTemplatesHandler struct {
	svc    *planning.Service
	logger *utils.Logger
}

func NewRoleTemplatesHandler(svc *planning.Service, logger *utils.Logger) *RoleTemplatesHandler {
	return &RoleTemplatesHandler{svc: svc, logger: logger}
}

func (h *RoleTemplatesHandler) Seed(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SeedRoleTemplates(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *RoleTemplatesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListRoleTemplates(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *RoleTemplatesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload planning.RoleTemplateInput
	if !decodeBody(w, r, &payload) {
		return
	}
	rt, err := h.svc.CreateRoleTemplate(r.Context(), payload)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

func (h *RoleTemplatesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	rt, err := h.svc.UpdateRoleTemplate(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *RoleTemplatesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteRoleTemplate(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeOK(w)
}
