package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name string
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub" }
func (s *stubTool) InputSchema() any    { return map[string]any{"type": "object"} }
func (s *stubTool) Execute(ctx context.Context, input string) (string, error) {
	return "ok", nil
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Register(&stubTool{name: "health_tips"})
	r.Register(&stubTool{name: "schedule_reminder"})

	got, ok := r.Get("health_tips")
	require.True(t, ok)
	assert.Equal(t, "health_tips", got.Name())

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.Len(t, r.All(), 2)
}

func TestRegistryScope(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Register(&stubTool{name: "health_tips"})
	r.Register(&stubTool{name: "schedule_reminder"})

	scoped := r.Scope([]string{"health_tips"})
	assert.Len(t, scoped.All(), 1)
	_, ok := scoped.Get("schedule_reminder")
	assert.False(t, ok)

	// Nil means no restriction, a non-nil empty list means no tools.
	assert.Len(t, r.Scope(nil).All(), 2)
	assert.Empty(t, r.Scope([]string{}).All())
}

func TestContextCarriers(t *testing.T) {
	t.Parallel()
	ctx := ContextWithSessionID(context.Background(), "s1")
	assert.Equal(t, "s1", SessionIDFromContext(ctx))
	assert.Equal(t, "", SessionIDFromContext(context.Background()))

	var seen []Event
	ctx = ContextWithEmit(ctx, func(ev Event) { seen = append(seen, ev) })
	emit := EmitFromContext(ctx)
	require.NotNil(t, emit)
	emit(Event{Type: EventDone})
	assert.Len(t, seen, 1)
	assert.Nil(t, EmitFromContext(context.Background()))
}
