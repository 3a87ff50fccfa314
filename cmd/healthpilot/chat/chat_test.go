package chat

import (
	"testing"

	"healthpilot/internal/agent"
	"healthpilot/internal/config"
	"healthpilot/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilesBuiltins(t *testing.T) {
	t.Parallel()
	profiles := Profiles(&config.Config{})

	copilot, ok := profiles["copilot"]
	require.True(t, ok)
	assert.Nil(t, copilot.Tools, "copilot gets the full toolset")

	baseline, ok := profiles["baseline"]
	require.True(t, ok)
	require.NotNil(t, baseline.Tools, "baseline must express an explicit empty toolset")
	assert.Empty(t, baseline.Tools)
	assert.NotEqual(t, copilot.SystemPrompt, baseline.SystemPrompt)
}

func TestProfilesConfigOverride(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{
		Agents: map[string]*config.AgentConfig{
			"tips_only": {SystemPrompt: "tips only", Tools: []string{"health_tips"}},
		},
	}
	profiles := Profiles(cfg)
	require.Contains(t, profiles, "tips_only")
	assert.Equal(t, []string{"health_tips"}, profiles["tips_only"].Tools)
}

func TestBaselineProfileScopesToZeroTools(t *testing.T) {
	t.Parallel()
	registry := agent.NewRegistry()
	registry.Register(tools.NewHealthTips())
	registry.Register(tools.NewScheduleReminder())

	baseline := Profiles(&config.Config{})["baseline"]
	scoped := registry.Scope(baseline.Tools)
	assert.Empty(t, scoped.All())

	copilot := Profiles(&config.Config{})["copilot"]
	assert.Len(t, registry.Scope(copilot.Tools).All(), 2)
}
