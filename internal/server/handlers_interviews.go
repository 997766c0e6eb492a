package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/interview-evaluator/internal/evaluation"
	"github.com/jonathan/interview-evaluator/internal/server/middleware"
	"github.com/jonathan/interview-evaluator/internal/types"
)

// EvaluateResponse represents the response for POST /interviews/{id}/evaluate
type EvaluateResponse struct {
	DocID              string           `json:"docId"`
	Analysed           bool             `json:"analysed"`
	InterviewQuestions []types.Question `json:"interviewQuestions"`
}

// handleEvaluateInterview scores every question of an interview document and
// writes the result back to the store.
func (s *Server) handleEvaluateInterview(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("id")
	if docID == "" {
		s.errorResponse(w, http.StatusBadRequest, codeInternal, "Interview ID is required")
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, codeUnauthenticated, "Unauthenticated")
		return
	}

	result, err := s.evalService.Run(r.Context(), docID, userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), errorCode(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, EvaluateResponse{
		DocID:              docID,
		Analysed:           true,
		InterviewQuestions: result,
	})
}

// handleGetInterview returns the caller's stored interview document.
func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("id")
	if docID == "" {
		s.errorResponse(w, http.StatusBadRequest, codeInternal, "Interview ID is required")
		return
	}

	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, codeUnauthenticated, "Unauthenticated")
		return
	}

	raw, err := s.store.GetDocument(r.Context(), evaluation.Collection, docID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, codeInternal, "Database error: "+err.Error())
		return
	}
	if raw == nil {
		s.errorResponse(w, http.StatusNotFound, codeNotFound, "Interview not found")
		return
	}

	var doc types.InterviewDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, codeInternal, "Corrupt interview document")
		return
	}

	if doc.UserID != userID {
		s.errorResponse(w, http.StatusForbidden, codePermissionDenied, "Interview belongs to another user")
		return
	}

	s.jsonResponse(w, http.StatusOK, doc)
}
