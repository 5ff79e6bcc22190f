// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml (optional), merges config.<APP_ENVIRONMENT>.yaml
// and applies environment overrides.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // optional

	return build(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return build(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	// APP_SERVER_PORT style overrides for every key.
	v.SetEnvPrefix("app")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func build(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideEmptyConfig(&cfg)
	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders left in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

// overrideEmptyConfig fills values still empty after unmarshal from the
// plain environment names the deployment already uses.
func overrideEmptyConfig(cfg *Config) {
	setIfEmpty(&cfg.Spreadsheet.ID, "SPREADSHEET_ID")
	setIfEmpty(&cfg.GenAI.APIKey, "GEMINI_API_KEY")
	setIfEmpty(&cfg.GenAI.Model, "GEMINI_MODEL")
	setIfEmpty(&cfg.Mail.Sender, "GMAIL_SENDER")
	setIfEmpty(&cfg.Google.ServiceAccountJSON, "GOOGLE_SERVICE_ACCOUNT_JSON")
	setIfEmpty(&cfg.Google.ServiceAccountJSONPath, "GOOGLE_SERVICE_ACCOUNT_JSON_PATH")
	setIfEmpty(&cfg.Server.BasePath, "BASE_PATH")
	setIfEmpty(&cfg.Mail.SES.Region, "AWS_REGION")

	if cfg.Server.Port == 0 {
		if val := os.Getenv("PORT"); val != "" {
			if port, err := strconv.Atoi(val); err == nil {
				cfg.Server.Port = port
			}
		}
	}
}

func setIfEmpty(dst *string, envKey string) {
	if *dst != "" {
		return
	}
	if val := os.Getenv(envKey); val != "" {
		*dst = val
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "ayurveda-intake"
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8081
	}
	if cfg.Server.BasePath == "" {
		cfg.Server.BasePath = "/counselling/ayurveda"
	}
	cfg.Server.BasePath = "/" + strings.Trim(cfg.Server.BasePath, "/")
	if cfg.Server.MaxBodyBytes == 0 {
		cfg.Server.MaxBodyBytes = 1 << 20
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = "dist"
	}

	if cfg.Spreadsheet.RawSheet == "" {
		cfg.Spreadsheet.RawSheet = "raw_intake"
	}
	if cfg.Spreadsheet.TranslatedSheet == "" {
		cfg.Spreadsheet.TranslatedSheet = "translated_intake"
	}
	if cfg.Spreadsheet.Timezone == "" {
		cfg.Spreadsheet.Timezone = "Asia/Tokyo"
	}

	if cfg.Google.RequestTimeout == 0 {
		cfg.Google.RequestTimeout = 30 * time.Second
	}

	if cfg.GenAI.Model == "" {
		cfg.GenAI.Model = "gemini-3-flash-preview"
	}

	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = MailProviderGmail
	}
	cfg.Mail.Provider = strings.ToLower(cfg.Mail.Provider)

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Observability.ServiceName == "" {
		cfg.Observability.ServiceName = cfg.App.Name
	}
}

// validateConfig only checks structure. Spreadsheet ID, API key and sender are
// allowed to be empty here; submissions fail on them instead.
func validateConfig(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if cfg.Google.RequestTimeout < 0 {
		return fmt.Errorf("google.request_timeout must not be negative")
	}
	if cfg.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("server.max_body_bytes must not be negative")
	}
	if _, err := time.LoadLocation(cfg.Spreadsheet.Timezone); err != nil {
		return fmt.Errorf("spreadsheet.timezone %q: %w", cfg.Spreadsheet.Timezone, err)
	}
	if cfg.Spreadsheet.RawSheet == cfg.Spreadsheet.TranslatedSheet {
		return fmt.Errorf("spreadsheet.raw_sheet and spreadsheet.translated_sheet must differ")
	}

	switch cfg.Mail.Provider {
	case MailProviderGmail:
	case MailProviderSES:
		if cfg.Mail.SES.Region == "" {
			return fmt.Errorf("mail.ses.region is required when mail.provider is ses")
		}
	default:
		return fmt.Errorf("mail.provider %q is not supported", cfg.Mail.Provider)
	}

	return nil
}
