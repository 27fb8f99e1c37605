// Package scoring converts a researcher's raw activity records into a
// point breakdown using the portal's fixed per-category weight tables.
package scoring

import (
	"context"
	"strings"

	"github.com/facultymetrics/facultyrank/internal/domain/category"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
	"github.com/facultymetrics/facultyrank/pkg/logger"
	"github.com/facultymetrics/facultyrank/pkg/metrics"
)

// RecordSource is the read-only collaborator that returns one user's raw
// activity rows for one category. Implementations may fail; the calculator
// degrades a failed category to empty rather than aborting.
type RecordSource interface {
	FetchCategoryRecords(ctx context.Context, userID int64, cat category.Category) ([]model.ActivityRecord, error)
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithLogger sets a custom logger for the calculator.
func WithLogger(l logger.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// Calculator computes score breakdowns. It is stateless apart from its
// injected record source and safe for concurrent use.
type Calculator struct {
	source RecordSource
	logger logger.Logger
}

// NewCalculator creates a calculator over the given record source.
func NewCalculator(source RecordSource, opts ...Option) *Calculator {
	c := &Calculator{
		source: source,
		logger: logger.Get().Named("scoring"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ComputeScore builds the full breakdown for one user. Given an identical
// record snapshot the result is identical; the calculator never writes.
//
// A category whose fetch fails contributes an empty list and subtotal 0.
// That mapping happens here and only here: availability over correctness,
// so a dashboard request never hard-fails on one bad category read.
func (c *Calculator) ComputeScore(ctx context.Context, userID int64) model.ScoreBreakdown {
	items := make(map[category.Category][]model.ScoreItem, category.Count)

	for _, cat := range category.All() {
		records, err := c.source.FetchCategoryRecords(ctx, userID, cat)
		if err != nil {
			// Degrade boundary: Err -> empty list. The failure is counted
			// and logged but never surfaced to the caller.
			metrics.RecordCategoryFetchFailure(cat.String())
			c.logger.Warn(ctx, "category fetch failed; scoring category as empty",
				logger.Int("userID", int(userID)),
				logger.String("category", cat.String()),
				logger.Error(err),
			)
			records = nil
		}

		scored := make([]model.ScoreItem, 0, len(records))
		for _, rec := range records {
			if rec.Category != cat {
				continue
			}
			points, ok := scoreRecord(rec)
			if !ok {
				continue
			}
			scored = append(scored, model.ScoreItem{
				ID:      rec.ID,
				Title:   rec.Title,
				Year:    rec.Year,
				Points:  points,
				Details: recordDetails(rec),
			})
		}
		items[cat] = scored
	}

	breakdown := model.NewScoreBreakdown(items)
	metrics.RecordScoreComputed()
	return breakdown
}

// recordDetails renders the attribute triple for display, e.g.
// "published q1" or "international speaker".
func recordDetails(rec model.ActivityRecord) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{rec.Status, rec.Level, rec.Kind} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
