package config

import (
	"context"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if FACULTYRANK_CONFIG is set
//  3. env (prefix FACULTYRANK_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("FACULTYRANK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, wrapLoad(err)
		}
	}

	// Environment variables: FACULTYRANK_ADDR, FACULTYRANK_DB_PATH, ...
	// Map env keys like FACULTYRANK_BATCH_CONCURRENCY -> batch_concurrency.
	envProvider := env.Provider("FACULTYRANK_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "facultyrank_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, wrapLoad(err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, wrapLoad(err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return ErrEmptyAddr
	case c.BatchConcurrency < 1:
		return ErrInvalidConcurrency
	case c.MaxLeaderboardLimit < 1:
		return ErrInvalidLimit
	}
	return nil
}
