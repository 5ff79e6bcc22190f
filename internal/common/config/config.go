// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // Asia/Tokyo must resolve on minimal images
)

// Config is the main application configuration struct. It is built once at
// process start and handed to every component by reference.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	Spreadsheet   SpreadsheetConfig   `mapstructure:"spreadsheet"`
	GenAI         GenAIConfig         `mapstructure:"genai"`
	Mail          MailConfig          `mapstructure:"mail"`
	Google        GoogleConfig        `mapstructure:"google"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port         int    `mapstructure:"port"`
	BasePath     string `mapstructure:"base_path"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
	StaticDir    string `mapstructure:"static_dir"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// SpreadsheetConfig addresses the external spreadsheet and its two canonical tabs.
type SpreadsheetConfig struct {
	ID              string `mapstructure:"id"`
	RawSheet        string `mapstructure:"raw_sheet"`
	TranslatedSheet string `mapstructure:"translated_sheet"`
	Timezone        string `mapstructure:"timezone"`
}

// Location resolves the configured timezone. validateConfig guarantees it loads.
func (s SpreadsheetConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type GenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// MailConfig holds the staff mailbox settings. Sender is both the From/To
// address and the identity impersonated by the service account.
type MailConfig struct {
	Sender   string `mapstructure:"sender"`
	Provider string `mapstructure:"provider"` // gmail | ses
	SES      struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"ses"`
}

type GoogleConfig struct {
	ServiceAccountJSON     string        `mapstructure:"service_account_json"`
	ServiceAccountJSONPath string        `mapstructure:"service_account_json_path"`
	RequestTimeout         time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ObservabilityConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

const (
	MailProviderGmail = "gmail"
	MailProviderSES   = "ses"
)
