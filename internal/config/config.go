// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// libraryDir is the subdirectory of the destination that holds TV shows.
const libraryDir = "TV"

// Config is the root configuration structure.
type Config struct {
	Source      string    `toml:"source"`
	Destination string    `toml:"destination"`
	DryRun      bool      `toml:"dry_run"`
	Log         LogConfig `toml:"log"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns a config with defaults applied and no directories set.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// TVRoot is the directory episodes are sorted into.
func (c *Config) TVRoot() string {
	return filepath.Join(c.Destination, libraryDir)
}

// Load reads and parses the configuration file.
// Unresolved ${VAR} references and unknown keys are reported as a *ConfigError;
// validation is left to the caller once flags have been merged in.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	md, err := toml.Decode(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		cfgErr := &ConfigError{Path: path}
		for _, key := range undecoded {
			cfgErr.Unknown = append(cfgErr.Unknown, key.String())
		}
		return nil, cfgErr
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// envVarPattern matches ${VAR_NAME} and ${VAR_NAME:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} references with environment values.
// It returns the substituted content and the sorted names of variables that
// were unset and had no default.
func substituteEnvVars(content string) (string, []string) {
	seen := make(map[string]bool)
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name := parts[1]
		hasDefault := strings.Contains(match, ":-")

		if value, ok := os.LookupEnv(name); ok && (value != "" || !hasDefault) {
			return value
		}
		if hasDefault {
			return parts[2]
		}
		seen[name] = true
		return match
	})

	missing := make([]string, 0, len(seen))
	for name := range seen {
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return result, missing
}
