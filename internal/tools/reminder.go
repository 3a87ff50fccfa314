package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"healthpilot/internal/reminder"
)

// ScheduleReminder schedules a preventive reminder at a specific time.
// Scheduling is a stub: the confirmation is built and returned, nothing
// is stored or dispatched.
type ScheduleReminder struct{}

func NewScheduleReminder() *ScheduleReminder { return &ScheduleReminder{} }

func (s *ScheduleReminder) Name() string { return "schedule_reminder" }
func (s *ScheduleReminder) Description() string {
	return "Schedule a preventive health reminder at a specific RFC 3339 time, e.g. 2025-01-01T08:00:00Z. Use when the user wants something at a specific time rather than a relative duration."
}

func (s *ScheduleReminder) InputSchema() any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"time": map[string]any{
				"type":        "string",
				"description": "Reminder time in RFC 3339 format (date, time and offset)",
			},
			"message": map[string]any{
				"type":        "string",
				"description": "Reminder message text",
			},
		},
		"required":             []string{"time", "message"},
		"additionalProperties": false,
	}
}

func (s *ScheduleReminder) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Time    string `json:"time"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("parsing schedule_reminder input: %w", err)
	}

	rec := reminder.Schedule(args.Time, args.Message)
	slog.Debug("schedule_reminder: scheduled", "at", rec.ScheduledAt, "status", rec.Status)

	out := fmt.Sprintf("Reminder scheduled at %s with message: '%s'", rec.ScheduledAt, rec.Message)
	if rec.Status == reminder.StatusAdjustedTime {
		out += " (requested time was invalid, adjusted to now)"
	}
	return out, nil
}
