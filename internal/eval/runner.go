package eval

import (
	"context"
	"fmt"
	"log/slog"

	"healthpilot/internal/llm"
	"healthpilot/internal/prompt"
	"healthpilot/internal/trace"

	"github.com/openai/openai-go/v3/responses"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Comparison pairs a prompt variant with its scored response.
type Comparison struct {
	Variant string `json:"variant"`
	Record  Record `json:"record"`
}

// Runner drives each prompt variant through the model and scores the
// output. Variants run prompt-only, without tools, so the comparison
// isolates the prompt text itself.
type Runner struct {
	provider llm.Provider
}

func NewRunner(provider llm.Provider) *Runner {
	return &Runner{provider: provider}
}

// Compare renders and runs the given variants for a query. Variant names
// default to the full library when empty.
func (r *Runner) Compare(ctx context.Context, query string, variants []string) ([]Comparison, error) {
	if len(variants) == 0 {
		variants = prompt.Variants()
	}

	ctx, span := trace.Tracer().Start(ctx, "eval.compare",
		oteltrace.WithAttributes(
			attribute.String("eval.query", query),
			attribute.Int("eval.variants", len(variants)),
		),
	)
	defer span.End()

	results := make([]Comparison, 0, len(variants))
	for _, name := range variants {
		rec, err := r.runVariant(ctx, name, query)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("variant %s: %w", name, err)
		}
		results = append(results, Comparison{Variant: name, Record: rec})
	}
	return results, nil
}

func (r *Runner) runVariant(ctx context.Context, name, query string) (Record, error) {
	rendered, err := prompt.Render(name, map[string]string{
		"query":     query,
		"condition": query,
	})
	if err != nil {
		return Record{}, err
	}

	ctx, span := trace.Tracer().Start(ctx, "eval.variant",
		oteltrace.WithAttributes(attribute.String("eval.variant", name)),
	)
	defer span.End()

	input := []responses.ResponseInputItemUnionParam{
		responses.ResponseInputItemParamOfMessage(rendered, "user"),
	}
	resp, err := r.provider.ChatStream(ctx, input, nil, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Record{}, err
	}

	text := resp.OutputText()
	rec := Evaluate(query, text)
	slog.Debug("eval: variant scored", "variant", name, "score", rec.ReasoningScore, "words", rec.LengthWords)
	span.SetAttributes(
		attribute.Int("eval.score", rec.ReasoningScore),
		attribute.Int("eval.words", rec.LengthWords),
	)
	return rec, nil
}
