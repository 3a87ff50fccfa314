// Package reminder implements the preventive-reminder stub. It validates
// the requested time and builds a confirmation record; nothing is stored
// or dispatched.
package reminder

import "time"

// Status values for a scheduled reminder.
const (
	StatusScheduled    = "scheduled"
	StatusAdjustedTime = "scheduled_with_adjusted_time"
)

// Record describes one scheduling request outcome.
type Record struct {
	ScheduledAt string `json:"scheduled_at"`
	Message     string `json:"message"`
	Status      string `json:"status"`
}

// Schedule resolves a reminder time. A well-formed RFC 3339 timestamp is
// kept verbatim with StatusScheduled; anything else is replaced with the
// current time and tagged StatusAdjustedTime. The message passes through
// untouched. Schedule never fails.
func Schedule(timestamp, message string) Record {
	if _, err := time.Parse(time.RFC3339, timestamp); err != nil {
		return Record{
			ScheduledAt: time.Now().Format(time.RFC3339),
			Message:     message,
			Status:      StatusAdjustedTime,
		}
	}
	return Record{
		ScheduledAt: timestamp,
		Message:     message,
		Status:      StatusScheduled,
	}
}
