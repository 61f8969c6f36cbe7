// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Prefix namespaces every environment variable read by this module.
const Prefix = "AETERNA_PORTA_"

// ParseEnv loads configuration from prefixed environment variables.
//
// Struct tags name the variable without the prefix, so a field tagged
// `env:"WEB_HTTP_ADDR"` reads AETERNA_PORTA_WEB_HTTP_ADDR.
func ParseEnv(target any) error {
	return ParseEnvWith(target, nil)
}

// ParseEnvWith loads configuration using an explicit environment map.
// A nil map reads the process environment.
func ParseEnvWith(target any, environment map[string]string) error {
	opts := env.Options{Prefix: Prefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
