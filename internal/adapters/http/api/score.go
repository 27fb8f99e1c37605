// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
	"strings"
)

// ScoreHandler handles score requests.
type ScoreHandler struct {
	deps Dependencies
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps Dependencies) *ScoreHandler {
	return &ScoreHandler{deps: deps}
}

// HandleGetScore handles GET /score/{user_id} requests.
func (h *ScoreHandler) HandleGetScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID, ok := userIDFromPath(r.URL.Path, "/score/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	breakdown, err := h.deps.Score(r.Context(), userID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

// userIDFromPath extracts the integer id after prefix. A missing, nested,
// or non-numeric segment reports false.
func userIDFromPath(path, prefix string) (int64, bool) {
	seg := strings.TrimPrefix(path, prefix)
	if seg == "" || strings.Contains(seg, "/") {
		return 0, false
	}
	id, err := strconv.ParseInt(seg, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
