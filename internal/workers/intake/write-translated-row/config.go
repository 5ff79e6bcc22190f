package writetranslatedrow

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

type Config struct {
	TranslatedSheet string         `mapstructure:"translated_sheet"`
	Location        *time.Location `mapstructure:"-"`
}

func DefaultConfig() *Config {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		loc = time.UTC
	}
	return &Config{
		TranslatedSheet: "translated_intake",
		Location:        loc,
	}
}

func (c *Config) Validate() error {
	if c.TranslatedSheet == "" {
		return fmt.Errorf("translated_sheet is required")
	}
	if c.Location == nil {
		return fmt.Errorf("location is required")
	}
	return nil
}
