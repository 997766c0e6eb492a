package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/interview-evaluator/internal/types"
)

// stubRunner is an EvaluationRunner returning canned results for tests.
type stubRunner struct {
	result []types.Question
	err    error

	gotDocID  string
	gotCaller uuid.UUID
}

func (r *stubRunner) Run(_ context.Context, docID string, callerID uuid.UUID) ([]types.Question, error) {
	r.gotDocID = docID
	r.gotCaller = callerID
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

// memStore is an in-memory evaluation.DocumentStore for handler tests.
type memStore struct {
	docs map[string][]byte
	err  error
}

func (m *memStore) GetDocument(_ context.Context, _, id string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.docs[id], nil
}

func (m *memStore) UpdateDocument(_ context.Context, _, _ string, _ map[string]any) error {
	return m.err
}

// newTestServer builds a Server wired to stubs, bypassing database and LLM setup.
func newTestServer(runner *stubRunner, store *memStore) *Server {
	if store == nil {
		store = &memStore{docs: map[string][]byte{}}
	}
	return &Server{
		evalService: runner,
		store:       store,
	}
}
