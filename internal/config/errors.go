package config

import (
	"errors"
	"fmt"
)

// Sentinel kinds for configuration errors.
var (
	ErrEmptyAddr          = errors.New("addr must not be empty")
	ErrInvalidConcurrency = errors.New("batch_concurrency must be at least 1")
	ErrInvalidLimit       = errors.New("max_leaderboard_limit must be at least 1")
)

func wrapLoad(err error) error {
	return fmt.Errorf("config load failed: %w", err)
}
