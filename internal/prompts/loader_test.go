package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("evaluation.json", "grade-answer-system")
	require.NoError(t, err)
	assert.Contains(t, prompt, "expert technical interviewer")
	assert.Contains(t, prompt, "{{.Domain}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("evaluation.json", "no-such-prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-prompt")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "grade-answer-system")
	require.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("evaluation.json", "no-such-prompt")
	})
}

func TestFormat(t *testing.T) {
	template := "Question: {{.Question}}\nKeywords: {{.Keywords}}"
	result := Format(template, map[string]string{
		"Question": "What is a hash map?",
		"Keywords": "hash, map",
	})

	assert.Equal(t, "Question: What is a hash map?\nKeywords: hash, map", result)
	assert.False(t, strings.Contains(result, "{{"))
}

func TestFormat_UnmatchedPlaceholderLeftIntact(t *testing.T) {
	result := Format("Topic: {{.Topic}}", map[string]string{"Question": "x"})
	assert.Equal(t, "Topic: {{.Topic}}", result)
}
