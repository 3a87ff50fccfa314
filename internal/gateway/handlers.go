package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"healthpilot/internal/agent"
	"healthpilot/internal/reminder"
	"healthpilot/internal/tips"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if req.SessionID == "" || req.Message == "" {
		http.Error(w, `{"error":"session_id and message are required"}`, http.StatusBadRequest)
		return
	}

	sse := NewSSEWriter(w)
	var sentError bool

	err := s.runner.Run(r.Context(), req.SessionID, req.Message, func(ev agent.Event) {
		var sendErr error
		switch ev.Type {
		case agent.EventToken:
			if token, ok := ev.Data.(string); ok {
				sendErr = sse.Send("token", map[string]string{"content": token})
			}
		case agent.EventToolCall:
			sendErr = sse.Send("tool_call", ev.Data)
		case agent.EventToolResult:
			sendErr = sse.Send("tool_result", ev.Data)
		case agent.EventError:
			sentError = true
			msg := "internal error"
			if text, ok := ev.Data.(string); ok {
				msg = text
			}
			sendErr = sse.Send("error", map[string]string{"error": msg})
		case agent.EventDone:
			sendErr = sse.Send("done", map[string]any{})
		}
		if sendErr != nil {
			slog.Debug("sse send failed", "event", ev.Type, "error", sendErr)
		}
	})

	if err != nil && !sentError {
		if sendErr := sse.Send("error", map[string]string{"error": err.Error()}); sendErr != nil {
			slog.Debug("sse send failed", "event", "error", "error", sendErr)
		}
	}
}

func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	condition := r.PathValue("condition")
	found := tips.Lookup(condition)
	if found == nil {
		found = []string{}
	}
	writeJSON(w, map[string]any{
		"condition": condition,
		"tips":      found,
	})
}

type reminderRequest struct {
	Time    string `json:"time"`
	Message string `json:"message"`
}

func (s *Server) handleScheduleReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	writeJSON(w, reminder.Schedule(req.Time, req.Message))
}

type evalRequest struct {
	Query    string   `json:"query"`
	Variants []string `json:"variants"`
}

func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON body"}`, http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		http.Error(w, `{"error":"query is required"}`, http.StatusBadRequest)
		return
	}

	results, err := s.eval.Compare(r.Context(), req.Query, req.Variants)
	if err != nil {
		http.Error(w, `{"error":"eval failed"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"results": results})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.store.ListSessions(r.Context())
	if err != nil {
		http.Error(w, `{"error":"loading sessions"}`, http.StatusInternalServerError)
		return
	}

	out := make([]map[string]string, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, map[string]string{
			"id":         sess.ID,
			"channel":    sess.Channel,
			"created_at": sess.CreatedAt,
		})
	}
	writeJSON(w, map[string]any{"sessions": out})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	turns, err := s.store.GetTurns(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"loading session"}`, http.StatusInternalServerError)
		return
	}

	out := make([]map[string]any, 0, len(turns))
	for _, t := range turns {
		out = append(out, map[string]any{
			"id":           t.ID,
			"user_message": t.UserMessage,
			"model":        t.Model.String,
			"created_at":   t.CreatedAt,
		})
	}
	writeJSON(w, map[string]any{"session_id": id, "turns": out})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
