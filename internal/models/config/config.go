package config

import "time"

// AppConfig is the process-wide configuration populated by Load.
var AppConfig *Config

type Config struct {
	Environment     string
	HTTPPort        string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
	Bot             BotConfig
	Database        DatabaseConfig
}

// BotConfig configures Telegram check-in notifications. An empty token
// disables them.
type BotConfig struct {
	Token    string
	Debug    bool
	AdminIDs []int64
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
