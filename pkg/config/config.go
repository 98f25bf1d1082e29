package config

import (
	"fmt"
	"time"
)

// Config represents the complete configuration for the copilot service.
// It provides type-safe access to all configuration values with validation.
type Config struct {
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Runtime   RuntimeConfig   `koanf:"runtime"   validate:"required"`
	OpenAI    OpenAIConfig    `koanf:"openai"`
	Mailchimp MailchimpConfig `koanf:"mailchimp"`
	Quota     QuotaConfig     `koanf:"quota"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host        string        `koanf:"host"          validate:"required"        env:"SERVER_HOST"`
	Port        int           `koanf:"port"          validate:"min=1,max=65535" env:"SERVER_PORT"`
	CORSEnabled bool          `koanf:"cors_enabled"                             env:"SERVER_CORS_ENABLED"`
	CORS        CORSConfig    `koanf:"cors"`
	Timeout     time.Duration `koanf:"timeout"                                  env:"SERVER_TIMEOUT"`
	MaxBodySize int64         `koanf:"max_body_size" validate:"min=1"           env:"SERVER_MAX_BODY_SIZE"`
}

// CORSConfig contains CORS configuration.
type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"   env:"SERVER_CORS_ALLOWED_ORIGINS"`
	AllowCredentials bool     `koanf:"allow_credentials" env:"SERVER_CORS_ALLOW_CREDENTIALS"`
	MaxAge           int      `koanf:"max_age"           env:"SERVER_CORS_MAX_AGE"`
}

// RuntimeConfig contains runtime behavior configuration.
type RuntimeConfig struct {
	Environment string `koanf:"environment" validate:"oneof=development staging production" env:"RUNTIME_ENVIRONMENT"`
	LogLevel    string `koanf:"log_level"   validate:"oneof=debug info warn error"          env:"RUNTIME_LOG_LEVEL"`
	LogJSON     bool   `koanf:"log_json"                                                    env:"RUNTIME_LOG_JSON"`
}

// OpenAIConfig contains OpenAI API configuration for both the chat
// completion and audio transcription endpoints.
type OpenAIConfig struct {
	APIKey             SensitiveString `koanf:"api_key"             env:"OPENAI_API_KEY"             sensitive:"true"`
	BaseURL            string          `koanf:"base_url"            env:"OPENAI_BASE_URL"`
	CompletionModel    string          `koanf:"completion_model"    env:"OPENAI_COMPLETION_MODEL"    validate:"required"`
	TranscriptionModel string          `koanf:"transcription_model" env:"OPENAI_TRANSCRIPTION_MODEL" validate:"required"`
	RequestTimeout     time.Duration   `koanf:"request_timeout"     env:"OPENAI_REQUEST_TIMEOUT"`
}

// MailchimpConfig contains the mailing-list provider configuration.
// ServerPrefix is derived from the API key suffix when left empty.
type MailchimpConfig struct {
	APIKey       SensitiveString `koanf:"api_key"       env:"MAILCHIMP_API_KEY"       sensitive:"true"`
	ServerPrefix string          `koanf:"server_prefix" env:"MAILCHIMP_SERVER_PREFIX"`
	ListID       string          `koanf:"list_id"       env:"MAILCHIMP_LIST_ID"`
}

// QuotaConfig contains the free-tier message quota configuration.
type QuotaConfig struct {
	FreeMessageLimit int `koanf:"free_message_limit" validate:"min=1" env:"QUOTA_FREE_MESSAGE_LIMIT"`
}

// RateLimitConfig contains API rate limiting configuration. Rate uses the
// limiter formatted syntax, e.g. "100-M" for 100 requests per minute.
type RateLimitConfig struct {
	Rate     string `koanf:"rate"     env:"RATELIMIT_RATE"`
	Disabled bool   `koanf:"disabled" env:"RATELIMIT_DISABLED"`
}

// Default returns the default configuration values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        5001,
			CORSEnabled: false,
			CORS: CORSConfig{
				AllowedOrigins: []string{"http://localhost:3000"},
				MaxAge:         86400,
			},
			Timeout:     30 * time.Second,
			MaxBodySize: 25 << 20, // audio uploads
		},
		Runtime: RuntimeConfig{
			Environment: "development",
			LogLevel:    "info",
		},
		OpenAI: OpenAIConfig{
			CompletionModel:    "gpt-4-turbo-preview",
			TranscriptionModel: "whisper-1",
			RequestTimeout:     60 * time.Second,
		},
		Quota: QuotaConfig{
			FreeMessageLimit: 2,
		},
		RateLimit: RateLimitConfig{
			Rate: "100-M",
		},
	}
}

// FullAddress returns the host:port address the server binds to.
func (s *ServerConfig) FullAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
