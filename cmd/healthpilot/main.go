package main

import (
	"os"

	"healthpilot/cmd/healthpilot/chat"
	"healthpilot/cmd/healthpilot/eval"
	"healthpilot/cmd/healthpilot/gateway"
	"healthpilot/internal/logger"

	"github.com/spf13/cobra"
)

func main() {
	logger.Init()
	rootCmd := &cobra.Command{
		Use:   "healthpilot",
		Short: "Healthpilot is a preventive health copilot agent",
	}

	rootCmd.AddCommand(chat.Cmd)
	rootCmd.AddCommand(gateway.Cmd)
	rootCmd.AddCommand(eval.Cmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
