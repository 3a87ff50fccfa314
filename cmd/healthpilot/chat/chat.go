package chat

import (
	"fmt"
	"os"
	"strings"

	"healthpilot/internal/agent"
	"healthpilot/internal/config"
	"healthpilot/internal/db"
	"healthpilot/internal/history"
	"healthpilot/internal/llm"
	"healthpilot/internal/memory"
	"healthpilot/internal/prompt"
	"healthpilot/internal/tools"

	"github.com/spf13/cobra"
)

var (
	sessionID   string
	profileName string
)

var Cmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send one message through the copilot agent",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, err := db.Open(cfg.DB.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		if err := database.Migrate(); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}

		llmCfg, ok := cfg.LLMs[cfg.DefaultLLM]
		if !ok {
			return fmt.Errorf("default LLM %q not found in config", cfg.DefaultLLM)
		}
		provider := llm.NewOpenAI(llmCfg.BaseURL, llmCfg.APIKey, llmCfg.Model)

		store := history.NewStore(database)
		mem := memory.NewConversationMemory(store)

		registry := agent.NewRegistry()
		registry.Register(tools.NewHealthTips())
		registry.Register(tools.NewScheduleReminder())

		factory := agent.NewRunnerFactory(provider, store, mem, registry, Profiles(cfg))
		runner, err := factory.Build(profileName)
		if err != nil {
			return err
		}

		message := strings.Join(args, " ")
		err = runner.Run(cmd.Context(), sessionID, message, func(ev agent.Event) {
			switch ev.Type {
			case agent.EventToken:
				fmt.Print(ev.Data)
			case agent.EventToolCall:
				fmt.Fprintf(os.Stderr, "\n[tool call] %v\n", ev.Data)
			case agent.EventToolResult:
				fmt.Fprintf(os.Stderr, "[tool result] %v\n", ev.Data)
			case agent.EventDone:
				fmt.Println()
			}
		})
		return err
	},
}

func init() {
	Cmd.Flags().StringVarP(&sessionID, "session", "s", "cli", "session id for conversation history")
	Cmd.Flags().StringVarP(&profileName, "profile", "p", "copilot", "agent profile to run")
}

// Profiles merges the built-in profiles with any configured ones. The
// copilot profile carries the full toolset; baseline runs prompt-only.
func Profiles(cfg *config.Config) map[string]*agent.Profile {
	profiles := map[string]*agent.Profile{
		"copilot": {
			Name:         "copilot",
			SystemPrompt: prompt.CopilotSystemPrompt,
		},
		"baseline": {
			Name:         "baseline",
			SystemPrompt: prompt.BaselineSystemPrompt,
			Tools:        []string{},
		},
	}
	for name, ac := range cfg.Agents {
		profiles[name] = &agent.Profile{
			Name:         name,
			SystemPrompt: ac.SystemPrompt,
			Tools:        ac.Tools,
		}
	}
	return profiles
}
