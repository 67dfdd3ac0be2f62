package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	tests := []struct {
		name      string
		err       *ConfigError
		want      string
		hasErrors bool
	}{
		{"empty", &ConfigError{}, "", false},
		{
			"missing",
			&ConfigError{Missing: []string{"A", "B"}},
			"invalid configuration:\n  - unset environment variables: A, B",
			true,
		},
		{
			"unknown with path",
			&ConfigError{Path: "/etc/filesorter.toml", Unknown: []string{"sorce"}},
			"invalid configuration in /etc/filesorter.toml:\n  - unknown keys: sorce",
			true,
		},
		{
			"validation",
			&ConfigError{Errors: []string{"source: required", "destination: required"}},
			"invalid configuration:\n  - source: required\n  - destination: required",
			true,
		},
		{
			"all kinds in order",
			&ConfigError{Missing: []string{"A"}, Unknown: []string{"x"}, Errors: []string{"log.level: bad"}},
			"invalid configuration:\n  - unset environment variables: A\n  - unknown keys: x\n  - log.level: bad",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.Equal(t, tt.hasErrors, tt.err.HasErrors())
		})
	}
}
