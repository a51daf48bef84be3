package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("TEAM_DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEAM_DATABASE_URL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TEAM_DATABASE_URL", "postgres://localhost/teamlog_test")

	// t.Setenv registers the restore; Unsetenv makes the variable truly
	// absent so the fallbacks fire.
	for _, key := range []string{"PORT", "TEAM_DOMAIN", "TEAM_SLACK", "TEAM_WEBHOOK_URL", "SESSION_SECRET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/teamlog_test", cfg.DatabaseURL)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "teamlog-dev-secret", cfg.SessionSecret)
	assert.Equal(t, "", cfg.WebhookURL)
	assert.Equal(t, 2, cfg.FeedPageSize)
	assert.Equal(t, 10, cfg.PostPageSize)
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("TEAM_DATABASE_URL", "postgres://db.internal/teamlog")
	t.Setenv("PORT", "8080")
	t.Setenv("TEAM_DOMAIN", "https://log.example.com")
	t.Setenv("TEAM_SLACK", "example-team")
	t.Setenv("TEAM_WEBHOOK_URL", "https://hooks.slack.com/services/T/B/x")
	t.Setenv("SESSION_SECRET", "prod-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://log.example.com", cfg.TeamDomain)
	assert.Equal(t, "example-team", cfg.TeamSlack)
	assert.Equal(t, "https://hooks.slack.com/services/T/B/x", cfg.WebhookURL)
	assert.Equal(t, "prod-secret", cfg.SessionSecret)
}
