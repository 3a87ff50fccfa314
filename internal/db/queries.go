package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Queries wraps the hand-written SQL against the healthpilot schema.
type Queries struct {
	conn *sql.DB
}

func New(conn *sql.DB) *Queries {
	return &Queries{conn: conn}
}

type Session struct {
	ID        string
	Channel   string
	CreatedAt string
}

type Turn struct {
	ID           int64
	SessionID    string
	UserMessage  string
	ResponseJSON string
	Model        sql.NullString
	CreatedAt    string
}

func (q *Queries) UpsertSession(ctx context.Context, id, channel string) error {
	_, err := q.conn.ExecContext(ctx, `
		INSERT INTO sessions (id, channel) VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`, id, channel)
	if err != nil {
		return fmt.Errorf("upserting session: %w", err)
	}
	return nil
}

func (q *Queries) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := q.conn.QueryContext(ctx, `
		SELECT id, channel, created_at FROM sessions ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.Channel, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (q *Queries) InsertTurn(ctx context.Context, sessionID, userMessage, responseJSON string, model sql.NullString) error {
	_, err := q.conn.ExecContext(ctx, `
		INSERT INTO turns (session_id, user_message, response_json, model)
		VALUES (?, ?, ?, ?)
	`, sessionID, userMessage, responseJSON, model)
	if err != nil {
		return fmt.Errorf("inserting turn: %w", err)
	}
	return nil
}

func (q *Queries) GetTurnsBySession(ctx context.Context, sessionID string) ([]Turn, error) {
	rows, err := q.conn.QueryContext(ctx, `
		SELECT id, session_id, user_message, response_json, model, created_at
		FROM turns WHERE session_id = ? ORDER BY id ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		if err := rows.Scan(&t.ID, &t.SessionID, &t.UserMessage, &t.ResponseJSON, &t.Model, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}
