package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Redis    RedisConfig
	Settings SettingsConfig
	Dice     DiceConfig
	Limits   LimitsConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN,required,notEmpty"`
	AppID   string `env:"DISCORD_APP_ID,required,notEmpty"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig selects the Redis store. Empty URL means no Redis.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

// SettingsConfig selects the SQL store for channel settings. It is used
// when Redis is not configured and a DSN is given.
type SettingsConfig struct {
	DBDriver string `env:"SETTINGS_DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"SETTINGS_DB_DSN"`

	// RequireManageChannels gates /settings behind the Manage Channels permission
	RequireManageChannels bool `env:"SETTINGS_REQUIRE_MANAGE_CHANNELS" envDefault:"false"`
}

// DiceConfig controls the dice set catalog
type DiceConfig struct {
	SetsPath   string `env:"DICE_SETS_PATH"`
	DefaultSet string `env:"DEFAULT_DICE_SET" envDefault:"basic"`
}

// LimitsConfig holds per-user throttling and response timing
type LimitsConfig struct {
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	DeferAfter         time.Duration `env:"RESPONSE_DEFER_AFTER" envDefault:"2s"`
}

// UsesRedis reports whether a Redis URL was configured
func (c *Config) UsesRedis() bool {
	return c.Redis.URL != ""
}

// UsesSQL reports whether channel settings go to a SQL database
func (c *Config) UsesSQL() bool {
	return !c.UsesRedis() && c.Settings.DBDSN != ""
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	switch c.Settings.DBDriver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("SETTINGS_DB_DRIVER must be sqlite or mysql, got %q", c.Settings.DBDriver)
	}

	if c.Limits.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.Limits.DeferAfter < 0 {
		return fmt.Errorf("RESPONSE_DEFER_AFTER must not be negative")
	}
	if c.Dice.DefaultSet == "" {
		return fmt.Errorf("DEFAULT_DICE_SET must not be empty")
	}

	return nil
}
