package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	SRS       SRSConfig       `mapstructure:"srs"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL          string `mapstructure:"url" validate:"required,url"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// AuthConfig contains the settings used to verify bearer tokens.
// Tokens are issued by an external identity service.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	// TokenLifetimeMinutes applies to development tokens minted by cmd/token-generator.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"gt=0"`
}

// SRSConfig overrides the spaced-repetition policy constants.
// Zero values keep the built-in defaults.
type SRSConfig struct {
	MasteryThreshold      int `mapstructure:"mastery_threshold" validate:"omitempty,gte=5"`
	FirstIntervalDays     int `mapstructure:"first_interval_days" validate:"gte=0"`
	SecondIntervalDays    int `mapstructure:"second_interval_days" validate:"gte=0"`
	GrowthFactor          int `mapstructure:"growth_factor" validate:"gte=0"`
	IncorrectIntervalDays int `mapstructure:"incorrect_interval_days" validate:"gte=0"`
	MaxIntervalDays       int `mapstructure:"max_interval_days" validate:"gte=0"`
}

// SchedulerConfig controls the daily statistics snapshot job.
type SchedulerConfig struct {
	SnapshotEnabled bool   `mapstructure:"snapshot_enabled"`
	SnapshotTime    string `mapstructure:"snapshot_time" validate:"omitempty,datetime=15:04"`
}
