package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	"text": true, "json": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	errs = append(errs, checkDir("source", c.Source)...)
	errs = append(errs, checkDir("destination", c.Destination)...)

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be one of text, json; got %q", c.Log.Format))
	}

	return errs
}

func checkDir(field, path string) []string {
	if path == "" {
		return []string{fmt.Sprintf("%s: required", field)}
	}
	info, err := os.Stat(path)
	if err != nil {
		return []string{fmt.Sprintf("%s: %q: %v", field, path, err)}
	}
	if !info.IsDir() {
		return []string{fmt.Sprintf("%s: %q is not a directory", field, path)}
	}
	return nil
}
