package config

import (
	"fmt"
	"os"
)

// Config holds all runtime configuration for the service.
// It is loaded once in main and passed by reference to every component
// that needs it; nothing in this codebase reads the environment after
// startup.
type Config struct {
	// Port is the HTTP listen port.
	Port string
	// DatabaseURL is the Postgres connection string.
	DatabaseURL string
	// TeamDomain is the public base URL of the deployment, used to
	// build permalinks in outbound notifications.
	TeamDomain string
	// TeamSlack is the slack workspace name, informational only.
	TeamSlack string
	// WebhookURL is the incoming-webhook endpoint notifications are
	// posted to. Empty disables outbound notifications.
	WebhookURL string
	// SessionSecret signs the session cookie.
	SessionSecret string
	// FeedPageSize is the page size of the cross-kind feed view.
	FeedPageSize int
	// PostPageSize is the page size of post and nippo listings.
	PostPageSize int
}

// Load reads configuration from the environment.
// TEAM_DATABASE_URL is the only required variable.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		DatabaseURL:   os.Getenv("TEAM_DATABASE_URL"),
		TeamDomain:    getEnv("TEAM_DOMAIN", ""),
		TeamSlack:     getEnv("TEAM_SLACK", ""),
		WebhookURL:    getEnv("TEAM_WEBHOOK_URL", ""),
		SessionSecret: getEnv("SESSION_SECRET", "teamlog-dev-secret"),
		FeedPageSize:  2,
		PostPageSize:  10,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("TEAM_DATABASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
