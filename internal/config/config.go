// Package config defines service configuration structures and loading
// hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Layer optional file and env overrides in Load.
// - External errors are wrapped via this package's error helpers.
package config

// Default configuration constants.
const (
	defaultBatchConcurrency     = 4
	defaultCacheTTLMS           = 60_000
	defaultMaxLeaderboardLimit  = 100
	defaultMinSimilarityPercent = 30
	defaultSimilarityTopK       = 5
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// DBPath is the sqlite DSN for the activity record store.
	DBPath string `koanf:"db_path"`

	// BatchConcurrency bounds in-flight per-user computations during a
	// population batch. Kept deliberately small: each unit computation
	// fans out into per-category store reads of its own.
	BatchConcurrency int `koanf:"batch_concurrency"`

	// CacheTTLMS is how long a scored population snapshot stays fresh.
	CacheTTLMS int `koanf:"cache_ttl_ms"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// MinSimilarityPercent is the exclusive lower bound for peer matches.
	MinSimilarityPercent int `koanf:"min_similarity_percent"`

	// SimilarityTopK caps how many similar peers a rank response carries.
	SimilarityTopK int `koanf:"similarity_top_k"`

	// RankingLocale is the BCP 47 tag used for name collation tie-breaks.
	// Empty means the Unicode root collation.
	RankingLocale string `koanf:"ranking_locale"`
}

// New creates a Config with the service defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":8090",
		DBPath:               "facultyrank.db",
		BatchConcurrency:     defaultBatchConcurrency,
		CacheTTLMS:           defaultCacheTTLMS,
		MaxLeaderboardLimit:  defaultMaxLeaderboardLimit,
		MinSimilarityPercent: defaultMinSimilarityPercent,
		SimilarityTopK:       defaultSimilarityTopK,
		RankingLocale:        "",
	}
}
