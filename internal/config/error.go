package config

import (
	"fmt"
	"strings"
)

// ConfigError collects everything wrong with a configuration so it can be
// reported in one go instead of one fix-and-rerun at a time.
type ConfigError struct {
	Path    string   // config file, empty when only flags were given
	Missing []string // ${VAR} references with no value and no default
	Unknown []string // keys the decoder did not recognize
	Errors  []string // validation failures
}

func (e *ConfigError) Error() string {
	var lines []string
	if len(e.Missing) > 0 {
		lines = append(lines, "unset environment variables: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unknown) > 0 {
		lines = append(lines, "unknown keys: "+strings.Join(e.Unknown, ", "))
	}
	lines = append(lines, e.Errors...)
	if len(lines) == 0 {
		return ""
	}

	header := "invalid configuration"
	if e.Path != "" {
		header = fmt.Sprintf("invalid configuration in %s", e.Path)
	}
	return header + ":\n  - " + strings.Join(lines, "\n  - ")
}

// HasErrors reports whether any problem was recorded.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Unknown) > 0 || len(e.Errors) > 0
}
