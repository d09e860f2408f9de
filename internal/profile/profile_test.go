package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearLLMEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TASKNEST_LLM_ENABLED",
		"TASKNEST_LLM_TOKEN",
		"TASKNEST_LLM_MODEL",
		"TASKNEST_LLM_BASE_URL",
		"TASKNEST_LLM_TIMEOUT_SECONDS",
		"TASKNEST_LLM_MAX_TOKENS",
		"TASKNEST_LLM_RETRIES",
		"TASKNEST_LLM_WEEKLY",
		"TASKNEST_TELEGRAM_BOT_TOKEN",
		"TASKNEST_TELEGRAM_API_URL",
	} {
		t.Setenv(key, "")
	}
}

func TestProfileDefaults(t *testing.T) {
	clearLLMEnvVars(t)

	p := &Profile{}
	p.FromEnv()

	require.False(t, p.LLMEnabled)
	require.Equal(t, "https://router.huggingface.co/v1", p.LLMBaseURL)
	require.Equal(t, 12*time.Second, p.LLMTimeout)
	require.Equal(t, 240, p.LLMMaxTokens)
	require.Equal(t, 1, p.LLMRetries)
	require.True(t, p.LLMWeekly)
	require.Equal(t, "https://api.telegram.org", p.TelegramAPIURL)
}

func TestProfileFromEnv(t *testing.T) {
	clearLLMEnvVars(t)
	t.Setenv("TASKNEST_LLM_ENABLED", "true")
	t.Setenv("TASKNEST_LLM_TOKEN", "hf_test")
	t.Setenv("TASKNEST_LLM_MODEL", "meta-llama/Llama-3.1-8B-Instruct")
	t.Setenv("TASKNEST_LLM_TIMEOUT_SECONDS", "5")
	t.Setenv("TASKNEST_LLM_RETRIES", "2")
	t.Setenv("TASKNEST_LLM_WEEKLY", "false")

	p := &Profile{}
	p.FromEnv()

	require.True(t, p.LLMEnabled)
	require.True(t, p.IsLLMConfigured())
	require.Equal(t, 5*time.Second, p.LLMTimeout)
	require.Equal(t, 2, p.LLMRetries)
	require.False(t, p.LLMWeekly)
}

func TestIsLLMConfigured(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    bool
	}{
		{"disabled", Profile{LLMEnabled: false, LLMToken: "t", LLMModel: "m"}, false},
		{"no token", Profile{LLMEnabled: true, LLMModel: "m"}, false},
		{"no model", Profile{LLMEnabled: true, LLMToken: "t"}, false},
		{"configured", Profile{LLMEnabled: true, LLMToken: "t", LLMModel: "m"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.profile.IsLLMConfigured())
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("unknown driver rejected", func(t *testing.T) {
		p := &Profile{Mode: "dev", Driver: "mysql"}
		require.Error(t, p.Validate())
	})

	t.Run("postgres requires dsn", func(t *testing.T) {
		p := &Profile{Mode: "prod", Driver: "postgres"}
		require.Error(t, p.Validate())
	})

	t.Run("sqlite gets default dsn", func(t *testing.T) {
		p := &Profile{Mode: "dev", Driver: "sqlite", Data: t.TempDir()}
		require.NoError(t, p.Validate())
		require.Contains(t, p.DSN, "tasknest_dev.db")
	})

	t.Run("negative retries clamped", func(t *testing.T) {
		p := &Profile{Mode: "dev", Driver: "sqlite", Data: t.TempDir(), LLMRetries: -3}
		require.NoError(t, p.Validate())
		require.Equal(t, 0, p.LLMRetries)
	})
}
