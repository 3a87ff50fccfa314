package agent

import (
	"fmt"

	"healthpilot/internal/history"
	"healthpilot/internal/llm"
	"healthpilot/internal/memory"
)

// RunnerFactory builds scoped runners from agent profiles.
type RunnerFactory struct {
	provider       llm.Provider
	store          *history.Store
	memory         memory.Memory
	globalRegistry *Registry
	profiles       map[string]*Profile
}

func NewRunnerFactory(provider llm.Provider, store *history.Store, mem memory.Memory, registry *Registry, profiles map[string]*Profile) *RunnerFactory {
	return &RunnerFactory{
		provider:       provider,
		store:          store,
		memory:         mem,
		globalRegistry: registry,
		profiles:       profiles,
	}
}

// Build creates a new ReactRunner scoped to the given profile.
func (f *RunnerFactory) Build(profileName string) (Runner, error) {
	profile, ok := f.profiles[profileName]
	if !ok {
		return nil, fmt.Errorf("unknown agent profile: %s", profileName)
	}

	registry := f.globalRegistry.Scope(profile.Tools)

	var opts []ReactOption
	if profile.SystemPrompt != "" {
		opts = append(opts, WithSystemPrompt(profile.SystemPrompt))
	}

	return NewReactRunner(f.provider, f.store, f.memory, registry, opts...), nil
}

// Profiles returns the names of all registered profiles.
func (f *RunnerFactory) Profiles() []string {
	names := make([]string, 0, len(f.profiles))
	for name := range f.profiles {
		names = append(names, name)
	}
	return names
}
