package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers for the latest scoring result.
const (
	StorageFile   = "file"
	StorageRedis  = "redis"
	StorageMemory = "memory"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// Prioritization
	LLM      LLMConfig
	Scoring  ScoringConfig
	Storage  StorageConfig
	Schedule ScheduleConfig

	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies may set X-Forwarded-For. Empty trusts no proxy.
	TrustedProxies []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ScoringConfig holds server-side defaults for a scoring run.
type ScoringConfig struct {
	DeadlineWeight float64
	ModuleWeight   float64
	EffortWeight   float64
	Timeout        time.Duration
	CustomPrompt   string
	Temperature    float64
}

type StorageConfig struct {
	Driver   string
	FilePath string
	Redis    RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	TTL      time.Duration
}

// ScheduleConfig bounds the daily study window used by the planner.
type ScheduleConfig struct {
	Timezone     string
	DayStartHour int
	DayEndHour   int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(v.Get("http_server.trusted_proxies"))
	if port := v.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.CORS.AllowedOrigins = splitList(v.Get("cors.allowed_origins"))

	// Scoring
	cfg.Scoring.DeadlineWeight = v.GetFloat64("scoring.deadline_weight")
	cfg.Scoring.ModuleWeight = v.GetFloat64("scoring.module_weight")
	cfg.Scoring.EffortWeight = v.GetFloat64("scoring.effort_weight")
	cfg.Scoring.Timeout = v.GetDuration("scoring.timeout")
	cfg.Scoring.CustomPrompt = v.GetString("scoring.custom_prompt")
	cfg.Scoring.Temperature = v.GetFloat64("scoring.temperature")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.FilePath = v.GetString("storage.file_path")
	cfg.Storage.Redis.Addr = v.GetString("storage.redis.addr")
	cfg.Storage.Redis.Password = expandEnvVar(v, v.GetString("storage.redis.password"))
	cfg.Storage.Redis.DB = v.GetInt("storage.redis.db")
	cfg.Storage.Redis.Key = v.GetString("storage.redis.key")
	cfg.Storage.Redis.TTL = v.GetDuration("storage.redis.ttl")
	if redisURL := v.GetString("redis_addr"); redisURL != "" {
		cfg.Storage.Redis.Addr = redisURL
	}

	// Schedule
	cfg.Schedule.Timezone = v.GetString("schedule.timezone")
	cfg.Schedule.DayStartHour = v.GetInt("schedule.day_start_hour")
	cfg.Schedule.DayEndHour = v.GetInt("schedule.day_end_hour")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8787)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	// Scoring defaults
	v.SetDefault("scoring.deadline_weight", 0.55)
	v.SetDefault("scoring.module_weight", 0.35)
	v.SetDefault("scoring.effort_weight", 0.10)
	v.SetDefault("scoring.timeout", "20s")
	v.SetDefault("scoring.temperature", 0.2)

	v.SetDefault("storage.driver", StorageFile)
	v.SetDefault("storage.file_path", "data/llm-priority-latest.json")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.key", "priority:latest")

	v.SetDefault("schedule.timezone", "UTC")
	v.SetDefault("schedule.day_start_hour", 9)
	v.SetDefault("schedule.day_end_hour", 21)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// Validate checks cross-field constraints. An empty provider list is
// valid and means every request is scored heuristically.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port)
	}

	if c.Scoring.DeadlineWeight < 0 || c.Scoring.ModuleWeight < 0 || c.Scoring.EffortWeight < 0 {
		return fmt.Errorf("scoring weights must not be negative")
	}

	switch c.Storage.Driver {
	case StorageFile:
		if c.Storage.FilePath == "" {
			return fmt.Errorf("storage.file_path is required for the file driver")
		}
	case StorageRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("storage.redis.addr is required for the redis driver")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Schedule.DayStartHour < 0 || c.Schedule.DayEndHour > 24 ||
		c.Schedule.DayStartHour >= c.Schedule.DayEndHour {
		return fmt.Errorf("schedule window %d-%d is invalid", c.Schedule.DayStartHour, c.Schedule.DayEndHour)
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("schedule.timezone: %w", err)
	}

	return validateLLMConfig(&c.LLM)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if provider.Timeout != "" {
			if _, err := time.ParseDuration(provider.Timeout); err != nil {
				return fmt.Errorf("provider %s: invalid timeout: %w", provider.Name, err)
			}
		}
	}

	for _, d := range []struct{ key, value string }{
		{"llm.retry_delay", cfg.RetryDelay},
		{"llm.max_total_timeout", cfg.MaxTotalTimeout},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.ParseDuration(d.value); err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
	}

	return nil
}

// splitList accepts a YAML list or a comma separated env value.
func splitList(raw interface{}) []string {
	var items []string
	switch val := raw.(type) {
	case []string:
		items = val
	case []interface{}:
		for _, item := range val {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	case string:
		items = strings.Split(val, ",")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
