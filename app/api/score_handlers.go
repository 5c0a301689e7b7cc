package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	scoreservice "github.com/arena-ops/podium/app/modules/score/application"
)

// handleGetScores returns every raw score row for a competition, the admin
// matrix view.
func (s *Server) handleGetScores(w http.ResponseWriter, r *http.Request) {
	competitionID, err := uuid.Parse(chi.URLParam(r, "competitionID"))
	if err != nil {
		http.Error(w, "invalid competition id", http.StatusBadRequest)
		return
	}

	scores, err := s.scoreService.Matrix(r.Context(), competitionID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch scores: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(scores); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

// handlePutScore upserts one judge mark. The competition in the path wins
// over whatever the body claims, and submissions are throttled per judge.
func (s *Server) handlePutScore(w http.ResponseWriter, r *http.Request) {
	competitionID, err := uuid.Parse(chi.URLParam(r, "competitionID"))
	if err != nil {
		http.Error(w, "invalid competition id", http.StatusBadRequest)
		return
	}

	var entry scoreservice.ScoreEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, fmt.Sprintf("Failed to decode request body: %v", err), http.StatusBadRequest)
		return
	}
	entry.CompetitionID = competitionID

	if entry.ParticipantID == uuid.Nil || entry.JudgeID == uuid.Nil || entry.RuleID == uuid.Nil {
		http.Error(w, "participant_id, judge_id and rule_id are required", http.StatusBadRequest)
		return
	}

	if !s.scoreLimiter.Allow(entry.JudgeID) {
		http.Error(w, "too many score submissions", http.StatusTooManyRequests)
		return
	}

	if err := s.scoreService.SubmitScore(r.Context(), entry); err != nil {
		http.Error(w, fmt.Sprintf("Failed to submit score: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
