package llm

import (
	"context"

	"github.com/openai/openai-go/v3/responses"
)

// Provider runs one model turn over the Responses API, streaming answer
// tokens through onToken and returning the completed response.
type Provider interface {
	ChatStream(ctx context.Context, input []responses.ResponseInputItemUnionParam, tools []responses.ToolUnionParam, onToken func(string)) (*responses.Response, error)
}
