// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// RankHandler handles rank requests.
type RankHandler struct {
	deps Dependencies
}

// NewRankHandler creates a new rank handler.
func NewRankHandler(deps Dependencies) *RankHandler {
	return &RankHandler{deps: deps}
}

// HandleGetRank handles GET /rank/{user_id} requests.
func (h *RankHandler) HandleGetRank(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID, ok := userIDFromPath(r.URL.Path, "/rank/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	result, err := h.deps.Rank(r.Context(), userID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
