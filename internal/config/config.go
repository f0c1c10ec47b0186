package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	UI      UIConfig
}

type APIConfig struct {
	AuthBaseURL string
	BaseURL     string
	Timeout     time.Duration
}

type SessionConfig struct {
	Backend string // "file" or "redis"
	Path    string
}

type RedisConfig struct {
	Addr string
	Key  string
}

type UIConfig struct {
	MessageTTL    time.Duration
	NavigateDelay time.Duration
	RedirectDelay time.Duration
}

func Load() *Config {
	return &Config{
		API: APIConfig{
			AuthBaseURL: getEnv("AUTH_BASE_URL", "http://127.0.0.1:8000"),
			BaseURL:     getEnv("API_BASE_URL", "http://127.0.0.1:8000/events"),
			Timeout:     time.Duration(getEnvInt("API_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Session: SessionConfig{
			Backend: getEnv("SESSION_BACKEND", "file"),
			Path:    getEnv("SESSION_PATH", defaultSessionPath()),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
			Key:  getEnv("SESSION_REDIS_KEY", "eventplanner:token"),
		},
		UI: UIConfig{
			MessageTTL:    time.Duration(getEnvInt("UI_MESSAGE_TTL_MS", 3000)) * time.Millisecond,
			NavigateDelay: time.Duration(getEnvInt("UI_NAVIGATE_DELAY_MS", 1500)) * time.Millisecond,
			RedirectDelay: time.Duration(getEnvInt("UI_REDIRECT_DELAY_MS", 2000)) * time.Millisecond,
		},
	}
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "eventplanner", "session.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
