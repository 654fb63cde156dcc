package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// ListCareersResponse represents the response for listing catalog careers
type ListCareersResponse struct {
	Careers []types.Career `json:"careers"`
	Count   int            `json:"count"`
}

// handleCareerMatches scores the catalog against a profile and returns the
// ranked match report
func (s *Server) handleCareerMatches(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	report, err := s.advisor.ScoreCareerMatches(r.Context(), req.Profile, req.Limit)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleSkillGaps analyzes a profile against a target role
func (s *Server) handleSkillGaps(w http.ResponseWriter, r *http.Request) {
	var req types.GapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	report, err := s.advisor.AnalyzeSkillGaps(r.Context(), req.Profile, req.CareerID, req.TargetRole)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleResources recommends learning resources for previously computed
// skill gaps
func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	var req types.ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	var target *types.Career
	if req.TargetCareerID != "" {
		career, err := s.advisor.GetCareer(r.Context(), req.TargetCareerID)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		target = career
	}

	report, err := s.advisor.RecommendResources(r.Context(), req.Profile, req.SkillGaps, target)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleListCareers lists catalog careers with optional industry filter
func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	industry := r.URL.Query().Get("industry")

	careers, err := s.advisor.ListCareers(r.Context(), industry, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Catalog error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListCareersResponse{
		Careers: careers,
		Count:   len(careers),
	})
}

// handleGetCareer retrieves a catalog career by its ID
func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Career ID is required")
		return
	}

	career, err := s.advisor.GetCareer(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, career)
}

// handleIngestCareer scrapes a job posting into the career catalog
func (s *Server) handleIngestCareer(w http.ResponseWriter, r *http.Request) {
	var req types.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	career, err := s.advisor.IngestCareer(r.Context(), req.URL, req.Industry)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, career)
}

// parseQueryInt parses an integer query parameter with a default and an
// optional maximum (0 means no maximum).
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return defaultValue
	}
	if maxValue > 0 && parsed > maxValue {
		return maxValue
	}
	return parsed
}
