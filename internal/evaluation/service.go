package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jonathan/interview-evaluator/internal/notify"
	"github.com/jonathan/interview-evaluator/internal/types"
)

// Collection is the document-store collection holding interview documents.
const Collection = "interviews"

// DocumentStore is the narrow document-database contract the service needs.
// Get returns nil bytes (and a nil error) when the document does not exist;
// Update merges the given fields into the stored document, last write wins.
type DocumentStore interface {
	GetDocument(ctx context.Context, collection, id string) ([]byte, error)
	UpdateDocument(ctx context.Context, collection, id string, fields map[string]any) error
}

// Service runs the full interview evaluation flow: read the document, flag
// it in progress, score every question, write the result back, and notify
// the owning user.
type Service struct {
	store     DocumentStore
	evaluator *Evaluator
	notifier  notify.Notifier // nil disables notifications
	topic     string
}

// NewService creates an evaluation service. notifier may be nil.
func NewService(store DocumentStore, evaluator *Evaluator, notifier notify.Notifier, topic string) *Service {
	return &Service{
		store:     store,
		evaluator: evaluator,
		notifier:  notifier,
		topic:     topic,
	}
}

// Run evaluates the interview document docID on behalf of callerID.
//
// The caller must own the document. The stored document receives exactly two
// partial updates: {analysed:false, evaluationInProgress:true} before
// evaluation and {interviewQuestions, analysed:true,
// evaluationInProgress:false} after. There is no optimistic-concurrency
// check; a concurrent writer can be overwritten.
func (s *Service) Run(ctx context.Context, docID string, callerID uuid.UUID) ([]types.Question, error) {
	raw, err := s.store.GetDocument(ctx, Collection, docID)
	if err != nil {
		return nil, fmt.Errorf("failed to read interview document: %w", err)
	}
	if raw == nil {
		return nil, &DocumentNotFoundError{DocID: docID}
	}

	var doc types.InterviewDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode interview document: %w", err)
	}

	if doc.UserID != callerID {
		return nil, &PermissionDeniedError{DocID: docID}
	}

	if err := s.store.UpdateDocument(ctx, Collection, docID, map[string]any{
		"analysed":             false,
		"evaluationInProgress": true,
	}); err != nil {
		return nil, fmt.Errorf("failed to mark evaluation in progress: %w", err)
	}

	evaluated, err := s.evaluator.Evaluate(ctx, &doc)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateDocument(ctx, Collection, docID, map[string]any{
		"interviewQuestions":   evaluated,
		"analysed":             true,
		"evaluationInProgress": false,
	}); err != nil {
		return nil, fmt.Errorf("failed to store evaluation result: %w", err)
	}

	s.sendNotification(ctx, docID, doc.UserID)

	return evaluated, nil
}

// sendNotification notifies the owning user that the evaluation finished.
// Failures are logged and swallowed; they never affect the stored result.
func (s *Service) sendNotification(ctx context.Context, docID string, ownerID uuid.UUID) {
	if s.notifier == nil {
		return
	}
	// The configured topic takes precedence; otherwise each user has their
	// own topic keyed by user ID.
	topic := s.topic
	if topic == "" {
		topic = ownerID.String()
	}
	msg := notify.Message{
		Data: notify.Data{
			Type:    "evaluation_complete",
			Title:   "Interview evaluated",
			Message: "Your interview answers have been scored",
			DocID:   docID,
		},
		Topic: topic,
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		log.Printf("Failed to send evaluation notification for %s: %v", docID, err)
	}
}
