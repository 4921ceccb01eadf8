package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"confdesk/core/apperr"
	"confdesk/core/planning"
	"confdesk/core/utils"
)

const maxPayloadBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func writeErrorBody(w http.ResponseWriter, status int, code, field, message string) {
	body := map[string]string{"code": code, "message": message}
	if field != "" {
		body["field"] = field
	}
	writeJSON(w, status, map[string]any{"error": body})
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindServerConfig:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps service errors to HTTP responses. Anything that is not an
// apperr.Error is logged and reported as a plain server error.
func writeError(w http.ResponseWriter, r *http.Request, logger *utils.Logger, err error) {
	if e, ok := apperr.As(err); ok {
		writeErrorBody(w, statusForKind(e.Kind), e.Code, e.Field, e.Message)
		return
	}
	logger.Errorf("%s %s: %v", r.Method, r.URL.Path, err)
	writeErrorBody(w, http.StatusInternalServerError, "server.error", "", "server error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, out any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxPayloadBytes)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeErrorBody(w, http.StatusRequestEntityTooLarge, "request.too_large", "", "payload too large")
		case errors.Is(err, io.EOF):
			writeErrorBody(w, http.StatusBadRequest, "request.empty", "", "request body required")
		default:
			writeErrorBody(w, http.StatusBadRequest, "request.invalid_json", "", "bad request")
		}
		return false
	}
	return true
}

func decodePatch(w http.ResponseWriter, r *http.Request) (planning.Patch, bool) {
	var patch planning.Patch
	if !decodeBody(w, r, &patch) {
		return nil, false
	}
	if patch == nil {
		patch = planning.Patch{}
	}
	return patch, true
}

func queryBool(r *http.Request, key string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
