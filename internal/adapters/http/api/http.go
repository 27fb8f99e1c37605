// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/facultymetrics/facultyrank/internal/adapters/repository"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Score computes one user's breakdown.
	Score(ctx context.Context, userID int64) (model.ScoreBreakdown, error)

	// Rank computes the full ranking view for one user.
	Rank(ctx context.Context, userID int64) (model.RankResult, error)

	// Leaderboard returns the top-n slice of the scored population.
	Leaderboard(ctx context.Context, n int) ([]model.RankedMember, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	scoreHandler       *ScoreHandler
	rankHandler        *RankHandler
	leaderboardHandler *LeaderboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLeaderboardLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		scoreHandler:       NewScoreHandler(deps),
		rankHandler:        NewRankHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps, maxLeaderboardLimit),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(RequestIDMiddleware(s.statsHandler.HandleStats), "stats"))
	mux.HandleFunc("/score/", MetricsMiddleware(RequestIDMiddleware(s.scoreHandler.HandleGetScore), "score"))
	mux.HandleFunc("/rank/", MetricsMiddleware(RequestIDMiddleware(s.rankHandler.HandleGetRank), "rank"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(RequestIDMiddleware(s.leaderboardHandler.HandleGetLeaderboard), "leaderboard"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found conditions to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
