package ensureschema

import "fmt"

type Config struct {
	RawSheet        string `mapstructure:"raw_sheet"`
	TranslatedSheet string `mapstructure:"translated_sheet"`
}

func DefaultConfig() *Config {
	return &Config{
		RawSheet:        "raw_intake",
		TranslatedSheet: "translated_intake",
	}
}

func (c *Config) Validate() error {
	if c.RawSheet == "" || c.TranslatedSheet == "" {
		return fmt.Errorf("raw_sheet and translated_sheet are required")
	}
	if c.RawSheet == c.TranslatedSheet {
		return fmt.Errorf("raw_sheet and translated_sheet must differ")
	}
	return nil
}
