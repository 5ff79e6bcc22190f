package emailsend

import (
	"fmt"
	"strings"
)

type Config struct {
	SubjectPrefix string `mapstructure:"subject_prefix"`
	// NoFlagsText replaces an empty risk flag list in the body.
	NoFlagsText string `mapstructure:"no_flags_text"`
}

func DefaultConfig() *Config {
	return &Config{
		SubjectPrefix: "L'VEDA Intake",
		NoFlagsText:   "None",
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.SubjectPrefix) == "" {
		return fmt.Errorf("subject_prefix is required")
	}
	if c.NoFlagsText == "" {
		return fmt.Errorf("no_flags_text is required")
	}
	return nil
}
