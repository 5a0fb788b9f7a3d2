package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Abdelrhman-tamer/CareerK-AI/internal/llm"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/matching"
	"github.com/Abdelrhman-tamer/CareerK-AI/internal/types"
)

var validate = validator.New()

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleRecommendations ranks the posted job and service postings against
// the developer profile in the request body.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req types.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	resp, err := s.recommender.ScoreAndRank(r.Context(), &req)
	if err != nil {
		var provErr *llm.ProviderError
		switch {
		case errors.Is(err, matching.ErrEmptyProfile):
			writeError(w, http.StatusBadRequest, "cv_text and fallback fields are empty")
		case errors.As(err, &provErr):
			s.logger.Printf("provider failure: %v", err)
			writeError(w, http.StatusBadGateway, "scoring provider unavailable")
		default:
			s.logger.Printf("recommendation failed: %v", err)
			writeError(w, http.StatusInternalServerError, "recommendation failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
