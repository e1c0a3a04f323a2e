package configs

import "time"

// Model configures the language-model client.
type Model struct {
	APIKey string `env:"API_KEY"`
	Name   string `env:"NAME" envDefault:"gemini-2.5-flash"`
	// Timeout bounds a single generation attempt.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
	// MaxRetries is the number of extra attempts on rate limits and server
	// errors. Zero disables retries.
	MaxRetries uint64 `env:"MAX_RETRIES" envDefault:"2"`
	// Backoff is the first wait between attempts. It doubles each time.
	Backoff         time.Duration `env:"BACKOFF" envDefault:"500ms"`
	MaxOutputTokens int32         `env:"MAX_OUTPUT_TOKENS" envDefault:"4096"`
	Temperature     float32       `env:"TEMPERATURE" envDefault:"0.4"`
}
