package createkarte

import "fmt"

type Config struct {
	MaxTitleLength int    `mapstructure:"max_title_length"`
	FallbackTitle  string `mapstructure:"fallback_title"`
	IDSuffixLength int    `mapstructure:"id_suffix_length"`
}

func DefaultConfig() *Config {
	return &Config{
		MaxTitleLength: 100,
		FallbackTitle:  "Karte",
		IDSuffixLength: 6,
	}
}

func (c *Config) Validate() error {
	if c.MaxTitleLength <= 0 {
		return fmt.Errorf("max_title_length must be positive")
	}
	if c.FallbackTitle == "" {
		return fmt.Errorf("fallback_title is required")
	}
	if c.IDSuffixLength <= 0 {
		return fmt.Errorf("id_suffix_length must be positive")
	}
	return nil
}
