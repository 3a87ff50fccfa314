package eval

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"no markers", "drink more water", 0},
		{"one group", "Thought: the user wants tips", 1},
		{"two groups", "Thought: ... Answer: walk daily", 2},
		{"all groups", "Thought: ... Answer: ... Observation: tool used", 3},
		{"case folded", "THOUGHT and ANSWER and REMINDER", 3},
		{"plan counts as group one", "plan: do things", 1},
		{"recommendation counts as group two", "my recommendation is rest", 1},
		{"multiple hits in one group count once", "thought plan thought", 1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Score(tt.in))
		})
	}
}

func TestScoreMonotonicInGroups(t *testing.T) {
	t.Parallel()
	base := "some filler text"
	prev := Score(base)
	for _, add := range []string{" thought", " answer", " observation"} {
		base += add
		got := Score(base)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 3, prev)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	rec := Evaluate("tips for stress", "Thought: breathe. Answer: recommend walking.")
	assert.Equal(t, "tips for stress", rec.Query)
	assert.Equal(t, "Thought: breathe. Answer: recommend walking.", rec.ResponseSnippet)
	assert.Equal(t, 2, rec.ReasoningScore)
	assert.Equal(t, 5, rec.LengthWords)
}

func TestEvaluateEmptyResponse(t *testing.T) {
	t.Parallel()
	rec := Evaluate("q", "")
	assert.Equal(t, 0, rec.ReasoningScore)
	assert.Equal(t, 0, rec.LengthWords)
	assert.Equal(t, "", rec.ResponseSnippet)
}

func TestEvaluateTruncatesSnippet(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("a ", 400)
	rec := Evaluate("q", long)
	assert.Len(t, rec.ResponseSnippet, 300)
	assert.Equal(t, 400, rec.LengthWords)
}

func TestEvaluateSnippetKeepsRunesWhole(t *testing.T) {
	t.Parallel()
	// A multibyte rune straddling the 300-character boundary must survive
	// truncation intact.
	response := strings.Repeat("a", 299) + "–9 hours"
	rec := Evaluate("q", response)
	assert.True(t, utf8.ValidString(rec.ResponseSnippet))
	assert.Equal(t, 300, utf8.RuneCountInString(rec.ResponseSnippet))
	assert.Equal(t, strings.Repeat("a", 299)+"–", rec.ResponseSnippet)
}

func TestEvaluateShortResponseKeptWhole(t *testing.T) {
	t.Parallel()
	rec := Evaluate("q", "short")
	assert.Equal(t, "short", rec.ResponseSnippet)
}
