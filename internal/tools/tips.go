package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"healthpilot/internal/tips"
)

// HealthTips exposes the static preventive-tips table to the agent.
type HealthTips struct{}

func NewHealthTips() *HealthTips { return &HealthTips{} }

func (h *HealthTips) Name() string { return "health_tips" }
func (h *HealthTips) Description() string {
	return "Return preventive health tips for a condition name such as 'stress', 'diabetes' or 'hypertension'. Call only when the user asks for preventive advice tied to a specific condition."
}

func (h *HealthTips) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"condition": map[string]any{
				"type":        "string",
				"description": "Short condition name, case-insensitive. Known conditions: " + strings.Join(tips.Conditions(), ", "),
			},
		},
		"required":             []string{"condition"},
		"additionalProperties": false,
	}
}

func (h *HealthTips) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Condition string `json:"condition"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing health_tips input: %w", err)
	}

	slog.Debug("health_tips: lookup", "condition", args.Condition)
	return truncate(tips.Format(args.Condition)), nil
}
