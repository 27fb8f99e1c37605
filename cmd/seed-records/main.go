package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/facultymetrics/facultyrank/internal/adapters/repository"
	"github.com/facultymetrics/facultyrank/internal/seed"
)

// Default generation constants.
const (
	defaultUsers          = 50
	defaultMaxPerCategory = 4
	defaultSeed           = 42
	defaultTimeout        = 2 * time.Minute
)

func main() {
	var (
		dbPath         = flag.String("db", "facultyrank.db", "Path to the sqlite database")
		users          = flag.Int("users", defaultUsers, "Number of faculty accounts to generate")
		maxPerCategory = flag.Int("max-per-category", defaultMaxPerCategory, "Max activities per user per category")
		seedValue      = flag.Int64("seed", defaultSeed, "Random seed for reproducible data")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	store, err := repository.NewSQLiteStore(*dbPath)
	if err != nil {
		os.Stderr.WriteString("failed to open store: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		os.Stderr.WriteString("failed to migrate store: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg := &seed.Config{
		Users:          *users,
		MaxPerCategory: *maxPerCategory,
		Seed:           *seedValue,
	}
	if err := seed.Run(ctx, store, cfg); err != nil {
		os.Stderr.WriteString("seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
