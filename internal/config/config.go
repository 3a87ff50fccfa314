package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	DefaultLLM string                    `toml:"default_llm"`
	LLMs       map[string]*LLMConfig     `toml:"llm"`
	Gateway    GatewayConfig             `toml:"gateway"`
	Channels   map[string]*ChannelConfig `toml:"channel"`
	DB         DBConfig                  `toml:"db"`
	Agents     map[string]*AgentConfig   `toml:"agent"`
	Trace      TraceConfig               `toml:"trace"`
}

type LLMConfig struct {
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

type GatewayConfig struct {
	Addr string `toml:"addr"`
}

type ChannelConfig struct {
	Enabled  bool              `toml:"enabled"`
	Type     string            `toml:"type"`
	Settings map[string]string `toml:"settings"`
}

type DBConfig struct {
	Path string `toml:"path"`
}

type AgentConfig struct {
	SystemPrompt string   `toml:"system_prompt"`
	Tools        []string `toml:"tools"`
}

type TraceConfig struct {
	Enabled  bool   `toml:"enabled"`
	Endpoint string `toml:"endpoint"`
	URLPath  string `toml:"url_path"`
	APIKey   string `toml:"api_key"`
}

func Load() (*Config, error) {
	cfg := &Config{
		DefaultLLM: "openai",
		LLMs: map[string]*LLMConfig{
			"openai": {
				Model: "gpt-4o-mini",
			},
		},
		Gateway: GatewayConfig{
			Addr: ":8486",
		},
		DB: DBConfig{
			Path: defaultDBPath(),
		},
	}

	path := configPath()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func configPath() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "healthpilot", "config.toml")
}

func defaultDBPath() string {
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, ".local", "share", "healthpilot", "healthpilot.db")
}
