package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"healthpilot/cmd/healthpilot/chat"
	"healthpilot/internal/agent"
	"healthpilot/internal/channels"
	"healthpilot/internal/config"
	"healthpilot/internal/db"
	"healthpilot/internal/eval"
	gw "healthpilot/internal/gateway"
	"healthpilot/internal/history"
	"healthpilot/internal/llm"
	"healthpilot/internal/memory"
	"healthpilot/internal/tools"
	"healthpilot/internal/trace"

	"github.com/spf13/cobra"
)

var addr string

var Cmd = &cobra.Command{
	Use:   "gateway",
	Short: "Start the gateway server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if addr != "" {
			cfg.Gateway.Addr = addr
		}

		if cfg.Trace.Enabled {
			shutdown, err := trace.Init(ctx, trace.Config{
				Endpoint: cfg.Trace.Endpoint,
				URLPath:  cfg.Trace.URLPath,
				APIKey:   cfg.Trace.APIKey,
			})
			if err != nil {
				return fmt.Errorf("initializing tracing: %w", err)
			}
			defer shutdown(context.Background())
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

		factory := agent.NewRunnerFactory(provider, store, mem, registry, chat.Profiles(cfg))
		runner, err := factory.Build("copilot")
		if err != nil {
			return err
		}

		chs := buildChannels(cfg, runner)

		srv := gw.NewServer(runner, store, eval.NewRunner(provider), chs...)
		slog.Info("starting gateway", "addr", cfg.Gateway.Addr, "channels", len(chs))
		return srv.ListenAndServe(cfg.Gateway.Addr)
	},
}

func init() {
	Cmd.Flags().StringVarP(&addr, "addr", "a", "", "override gateway listen address")
}

func buildChannels(cfg *config.Config, runner agent.Runner) []channels.Channel {
	var chs []channels.Channel
	for name, ch := range cfg.Channels {
		if !ch.Enabled {
			continue
		}
		switch ch.Type {
		case "telegram":
			chs = append(chs, channels.NewTelegram(ch.Settings["bot_token"], runner))
			slog.Info("channel registered", "name", name, "type", ch.Type)
		default:
			slog.Warn("unknown channel type", "name", name, "type", ch.Type)
		}
	}
	return chs
}
