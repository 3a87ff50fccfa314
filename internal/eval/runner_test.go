package eval

import (
	"context"
	"encoding/json"
	"testing"

	"healthpilot/internal/prompt"

	"github.com/openai/openai-go/v3/responses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns a canned response and records the prompts it saw.
type fakeProvider struct {
	text    string
	prompts []string
}

func (f *fakeProvider) ChatStream(ctx context.Context, input []responses.ResponseInputItemUnionParam, tools []responses.ToolUnionParam, onToken func(string)) (*responses.Response, error) {
	for _, item := range input {
		if b, err := json.Marshal(item); err == nil {
			f.prompts = append(f.prompts, string(b))
		}
	}

	raw := map[string]any{
		"output": []map[string]any{
			{
				"type": "message",
				"content": []map[string]any{
					{"type": "output_text", "text": f.text},
				},
			},
		},
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var resp responses.Response
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func TestCompareScoresEveryVariant(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{text: "Thought: plan. Answer: recommend a walk. Observation: tool output."}
	r := NewRunner(provider)

	results, err := r.Compare(context.Background(), "tips for stress", nil)
	require.NoError(t, err)
	require.Len(t, results, len(prompt.Variants()))

	for _, c := range results {
		assert.Equal(t, 3, c.Record.ReasoningScore, "variant %s", c.Variant)
		assert.Equal(t, "tips for stress", c.Record.Query)
		assert.Positive(t, c.Record.LengthWords)
	}
}

func TestCompareRendersQueryIntoPrompts(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{text: "ok"}
	r := NewRunner(provider)

	_, err := r.Compare(context.Background(), "help with diabetes", []string{prompt.React})
	require.NoError(t, err)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "help with diabetes")
}

func TestCompareUnknownVariant(t *testing.T) {
	t.Parallel()
	r := NewRunner(&fakeProvider{text: "ok"})

	_, err := r.Compare(context.Background(), "q", []string{"bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown prompt variant")
}
