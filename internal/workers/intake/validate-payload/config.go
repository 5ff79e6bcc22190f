package validatepayload

import "fmt"

type Config struct {
	MinVitality float64 `mapstructure:"min_vitality"`
	MaxVitality float64 `mapstructure:"max_vitality"`
	// NoneSentinel is the sensory_sensitivity answer that excludes all others.
	// Matched case-insensitively.
	NoneSentinel string `mapstructure:"none_sentinel"`
}

func DefaultConfig() *Config {
	return &Config{
		MinVitality:  1,
		MaxVitality:  10,
		NoneSentinel: "None",
	}
}

func (c *Config) Validate() error {
	if c.MinVitality > c.MaxVitality {
		return fmt.Errorf("min_vitality must not exceed max_vitality")
	}
	if c.NoneSentinel == "" {
		return fmt.Errorf("none_sentinel is required")
	}
	return nil
}
