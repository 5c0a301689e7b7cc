package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	pointsservice "github.com/arena-ops/podium/app/modules/points/application"
)

// handleGetStandings returns every team's championship total with its
// breakdown, best first.
func (s *Server) handleGetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := s.pointsService.Standings(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch standings: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(standings); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

// handleGetStandingsChart renders the standings as a PNG bar chart.
func (s *Server) handleGetStandingsChart(w http.ResponseWriter, r *http.Request) {
	png, err := s.pointsService.StandingsChart(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to render chart: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// handleGetTeamPoints returns one team's total and breakdown.
func (s *Server) handleGetTeamPoints(w http.ResponseWriter, r *http.Request) {
	teamID, err := uuid.Parse(chi.URLParam(r, "teamID"))
	if err != nil {
		http.Error(w, "invalid team id", http.StatusBadRequest)
		return
	}

	data, err := s.pointsService.TeamPoints(r.Context(), teamID)
	if err != nil {
		if errors.Is(err, pointsservice.ErrTeamNotFound) {
			http.Error(w, "team not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to fetch team points: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

// handleRecomputePoints rebuilds every team's cached total on demand.
func (s *Server) handleRecomputePoints(w http.ResponseWriter, r *http.Request) {
	summary, err := s.pointsService.RecomputeAllTeamTotals(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to recompute points: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}
