package recordsubmission

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

type Config struct {
	RawSheet string         `mapstructure:"raw_sheet"`
	Location *time.Location `mapstructure:"-"`
}

func DefaultConfig() *Config {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		loc = time.UTC
	}
	return &Config{
		RawSheet: "raw_intake",
		Location: loc,
	}
}

func (c *Config) Validate() error {
	if c.RawSheet == "" {
		return fmt.Errorf("raw_sheet is required")
	}
	if c.Location == nil {
		return fmt.Errorf("location is required")
	}
	return nil
}
