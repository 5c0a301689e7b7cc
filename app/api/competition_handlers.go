package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	competitionservice "github.com/arena-ops/podium/app/modules/competition/application"
)

// handleGetLeaderboard returns the live ranking for a competition, recomputed
// from current scores on every call.
func (s *Server) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	competitionID, err := uuid.Parse(chi.URLParam(r, "competitionID"))
	if err != nil {
		http.Error(w, "invalid competition id", http.StatusBadRequest)
		return
	}

	results, err := s.competitionService.LiveStandings(r.Context(), competitionID)
	if err != nil {
		s.renderCompetitionError(w, r, err, "Failed to fetch leaderboard")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

// handleFinalize persists ranks and totals and flips the competition to
// completed. One-way.
func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	competitionID, err := uuid.Parse(chi.URLParam(r, "competitionID"))
	if err != nil {
		http.Error(w, "invalid competition id", http.StatusBadRequest)
		return
	}

	results, err := s.competitionService.Finalize(r.Context(), competitionID)
	if err != nil {
		s.renderCompetitionError(w, r, err, "Failed to finalize competition")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

func (s *Server) renderCompetitionError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, competitionservice.ErrCompetitionNotFound):
		http.Error(w, "competition not found", http.StatusNotFound)
	case errors.Is(err, competitionservice.ErrAlreadyCompleted),
		errors.Is(err, competitionservice.ErrNotLive):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		s.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusInternalServerError)
	}
}
