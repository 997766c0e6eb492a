package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionAnswered(t *testing.T) {
	answer := "A key-value store"

	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{
			name: "answered question",
			q:    Question{Question: "What is a hash map?", CandidateAnswer: &answer},
			want: true,
		},
		{
			name: "unanswered question",
			q:    Question{Question: "What is a hash map?"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Answered())
		})
	}
}

func TestInterviewDocumentUnmarshal_MissingAnswer(t *testing.T) {
	// candidateAnswer absent from the stored JSON must decode to nil,
	// not to an empty string.
	raw := `{
		"domain": "backend",
		"interviewQuestions": [
			{"difficulty": "easy", "keywords": ["hash", "map"], "question": "What is a hash map?", "topic": "data structures"}
		]
	}`

	var doc InterviewDocument
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	require.Len(t, doc.InterviewQuestions, 1)
	q := doc.InterviewQuestions[0]
	assert.Nil(t, q.CandidateAnswer)
	assert.Equal(t, float64(0), q.Score)
	assert.Empty(t, q.Explanation)
	assert.Equal(t, []string{"hash", "map"}, q.Keywords)
}

func TestInterviewDocumentUnmarshal_EmptyQuestions(t *testing.T) {
	var doc InterviewDocument
	require.NoError(t, json.Unmarshal([]byte(`{"domain":"frontend"}`), &doc))
	assert.Nil(t, doc.InterviewQuestions)
	assert.False(t, doc.Analysed)
	assert.False(t, doc.EvaluationInProgress)
}
