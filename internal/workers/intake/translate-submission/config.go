package translatesubmission

import "fmt"

type Config struct {
	// DegradedSummaryChars caps the summary taken from unparseable output.
	DegradedSummaryChars int `mapstructure:"degraded_summary_chars"`
}

func DefaultConfig() *Config {
	return &Config{DegradedSummaryChars: 800}
}

func (c *Config) Validate() error {
	if c.DegradedSummaryChars <= 0 {
		return fmt.Errorf("degraded_summary_chars must be positive")
	}
	return nil
}
