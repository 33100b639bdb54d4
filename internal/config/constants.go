package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 120 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database ping timeout for the startup check
const DBPingTimeout = 5 * time.Second

// Per-turn timeout for the language-model gateway call
const GatewayTimeout = 90 * time.Second

// Pause between receiving the gateway answer and persisting the
// interaction.
const AnswerSettleDelay = time.Second
