// Package evaluation scores answered interview questions with an LLM.
// Questions are processed strictly sequentially in input order; a failure
// while scoring one question never aborts the rest of the batch.
package evaluation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/interview-evaluator/internal/llm"
	"github.com/jonathan/interview-evaluator/internal/prompts"
	"github.com/jonathan/interview-evaluator/internal/types"
)

// Fixed placeholder explanations for items that were not scored by the model.
const (
	NoAnswerExplanation    = "No answer provided"
	EvalFailureExplanation = "Error evaluating answer. Please try again later."
)

// defaultDomain is the grading persona domain used when the document does
// not specify one.
const defaultDomain = "technology"

// Evaluator grades interview answers using an LLM client.
type Evaluator struct {
	client llm.Client
}

// NewEvaluator creates an Evaluator backed by the given LLM client.
func NewEvaluator(client llm.Client) *Evaluator {
	return &Evaluator{client: client}
}

// verdict is the JSON object the model is instructed to return.
// Pointer fields distinguish missing keys from zero values.
type verdict struct {
	Score       *float64 `json:"score"`
	Explanation *string  `json:"explanation"`
}

// Evaluate scores every question in the document, returning a new slice of
// the same length and order with score and explanation filled in. All other
// question fields are preserved unchanged.
//
// Returns *EmptyInputError when the document has no questions; in that case
// no model calls are made.
func (e *Evaluator) Evaluate(ctx context.Context, doc *types.InterviewDocument) ([]types.Question, error) {
	if doc == nil || len(doc.InterviewQuestions) == 0 {
		return nil, &EmptyInputError{}
	}

	domain := doc.Domain
	if domain == "" {
		domain = defaultDomain
	}
	system := prompts.Format(prompts.MustGet("evaluation.json", "grade-answer-system"), map[string]string{
		"Domain": domain,
	})

	evaluated := make([]types.Question, 0, len(doc.InterviewQuestions))
	for _, q := range doc.InterviewQuestions {
		evaluated = append(evaluated, e.evaluateOne(ctx, system, q))
	}
	return evaluated, nil
}

// evaluateOne grades a single question. Any failure is converted into the
// fixed zero-score placeholder so the batch can continue.
func (e *Evaluator) evaluateOne(ctx context.Context, system string, q types.Question) types.Question {
	if !q.Answered() {
		q.Score = 0
		q.Explanation = NoAnswerExplanation
		return q
	}

	user := prompts.Format(prompts.MustGet("evaluation.json", "grade-answer-user"), map[string]string{
		"Question":   q.Question,
		"Answer":     *q.CandidateAnswer,
		"Difficulty": q.Difficulty,
		"Topic":      q.Topic,
		"Keywords":   strings.Join(q.Keywords, ", "),
	})

	raw, err := e.client.GenerateJSON(ctx, system, user)
	if err != nil {
		q.Score = 0
		q.Explanation = EvalFailureExplanation
		return q
	}

	var v verdict
	if err := json.Unmarshal([]byte(raw), &v); err != nil || v.Score == nil || v.Explanation == nil {
		q.Score = 0
		q.Explanation = EvalFailureExplanation
		return q
	}

	// The parsed values are taken as-is; the 0-5 range is a convention the
	// prompt asks for, not something enforced here.
	q.Score = *v.Score
	q.Explanation = *v.Explanation
	return q
}
