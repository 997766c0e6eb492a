// Package types provides type definitions for structured data used throughout the interview evaluation system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Question is a single interview question as stored in an interview document.
// Score and Explanation are zero-valued until the question has been evaluated.
type Question struct {
	Difficulty      string   `json:"difficulty"`
	Keywords        []string `json:"keywords"`
	Question        string   `json:"question"`
	Topic           string   `json:"topic"`
	CandidateAnswer *string  `json:"candidateAnswer,omitempty"` // nil means unanswered
	Score           float64  `json:"score"`
	Explanation     string   `json:"explanation"`
}

// Answered reports whether the candidate provided an answer.
func (q *Question) Answered() bool {
	return q.CandidateAnswer != nil
}

// InterviewDocument is the stored interview record. Domain optionally
// influences the grading persona; InterviewQuestions may be empty for
// documents that have not been populated yet.
type InterviewDocument struct {
	UserID               uuid.UUID  `json:"userId"`
	Domain               string     `json:"domain,omitempty"`
	InterviewQuestions   []Question `json:"interviewQuestions,omitempty"`
	Analysed             bool       `json:"analysed"`
	EvaluationInProgress bool       `json:"evaluationInProgress"`
	CreatedAt            time.Time  `json:"createdAt,omitempty"`
}
