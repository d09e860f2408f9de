package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Data is the data directory
	Data string
	// DSN points to where tasknest stores its own data
	DSN string
	// Driver is the database driver (sqlite or postgres)
	Driver string
	// Version is the current version of server
	Version string

	// LLM overlay configuration
	LLMEnabled   bool          // TASKNEST_LLM_ENABLED
	LLMToken     string        // TASKNEST_LLM_TOKEN
	LLMModel     string        // TASKNEST_LLM_MODEL
	LLMBaseURL   string        // TASKNEST_LLM_BASE_URL
	LLMTimeout   time.Duration // TASKNEST_LLM_TIMEOUT_SECONDS (default: 12)
	LLMMaxTokens int           // TASKNEST_LLM_MAX_TOKENS (default: 240)
	LLMRetries   int           // TASKNEST_LLM_RETRIES (default: 1, extra attempts)
	// LLMWeekly controls whether the scheduled weekly reports use the LLM
	// overlay at all; on-demand reports follow LLMEnabled alone.
	LLMWeekly bool // TASKNEST_LLM_WEEKLY (default: true)

	// Telegram delivery configuration
	TelegramBotToken string // TASKNEST_TELEGRAM_BOT_TOKEN
	TelegramAPIURL   string // TASKNEST_TELEGRAM_API_URL (default: https://api.telegram.org)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsLLMConfigured returns true if the LLM overlay is enabled and both token
// and model are set. Anything less means the rule-based report only.
func (p *Profile) IsLLMConfigured() bool {
	return p.LLMEnabled && p.LLMToken != "" && p.LLMModel != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1"
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// FromEnv loads configuration from TASKNEST_* environment variables.
func (p *Profile) FromEnv() {
	p.LLMEnabled = getBoolEnv("TASKNEST_LLM_ENABLED", false)
	p.LLMToken = os.Getenv("TASKNEST_LLM_TOKEN")
	p.LLMModel = os.Getenv("TASKNEST_LLM_MODEL")
	p.LLMBaseURL = getEnvOrDefault("TASKNEST_LLM_BASE_URL", "https://router.huggingface.co/v1")
	p.LLMTimeout = time.Duration(getIntEnv("TASKNEST_LLM_TIMEOUT_SECONDS", 12)) * time.Second
	p.LLMMaxTokens = getIntEnv("TASKNEST_LLM_MAX_TOKENS", 240)
	p.LLMRetries = getIntEnv("TASKNEST_LLM_RETRIES", 1)
	p.LLMWeekly = getBoolEnv("TASKNEST_LLM_WEEKLY", true)

	p.TelegramBotToken = os.Getenv("TASKNEST_TELEGRAM_BOT_TOKEN")
	p.TelegramAPIURL = getEnvOrDefault("TASKNEST_TELEGRAM_API_URL", "https://api.telegram.org")
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}

	if p.Driver != "sqlite" && p.Driver != "postgres" {
		return errors.Errorf("unsupported database driver %q: only 'sqlite' and 'postgres' are supported", p.Driver)
	}

	if p.Driver == "sqlite" {
		dataDir, err := checkDataDir(p.Data)
		if err != nil {
			slog.Error("failed to check data dir", slog.String("data", p.Data), slog.String("error", err.Error()))
			return err
		}
		p.Data = dataDir
		if p.DSN == "" {
			dbFile := fmt.Sprintf("tasknest_%s.db", p.Mode)
			p.DSN = filepath.Join(dataDir, dbFile)
		}
	}

	if p.Driver == "postgres" && p.DSN == "" {
		return errors.New("postgres driver requires a DSN")
	}

	if p.LLMRetries < 0 {
		p.LLMRetries = 0
	}
	if p.LLMTimeout <= 0 {
		p.LLMTimeout = 12 * time.Second
	}

	return nil
}
