package handlers

import (
	"net/http"

	"confdesk/core/planning"
	"confdesk/core/utils"
)

type PeopleHandler struct {
	svc    *planning.Service
	logger *utils.Logger
}

func NewPeopleHandler(svc *planning.Service, logger *utils.Logger) *PeopleHandler {
	return &PeopleHandler{svc: svc, logger: logger}
}

func (h *PeopleHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListPeople(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *PeopleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload planning.PersonInput
	if !decodeBody(w, r, &payload) {
		return
	}
	p, err := h.svc.CreatePerson(r.Context(), payload)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PeopleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	p, err := h.svc.UpdatePerson(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PeopleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeletePerson(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeOK(w)
}
