// Package similarity matches researchers whose activity portfolios look
// alike. It compares per-category item counts, not points, so the result
// is independent of the scoring weight tables.
package similarity

import (
	"math"
	"sort"

	"github.com/facultymetrics/facultyrank/internal/domain/category"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
)

// Default matcher configuration constants.
const (
	defaultMinSimilarityPercent = 30
	defaultTopK                 = 5

	// Categories whose similarity does not exceed this ratio are dropped
	// from both the numerator and the denominator of the aggregate.
	inclusionThreshold = 0.5
)

// Peer is one candidate portfolio in the population.
type Peer struct {
	ID     int64
	Vector model.CountVector
}

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithMinSimilarityPercent sets the exclusive lower bound for matches.
func WithMinSimilarityPercent(percent int) Option {
	return func(m *Matcher) {
		if percent >= 0 {
			m.minPercent = percent
		}
	}
}

// WithTopK sets how many matches are returned at most.
func WithTopK(k int) Option {
	return func(m *Matcher) {
		if k > 0 {
			m.topK = k
		}
	}
}

// Matcher finds the most similar peers for a target portfolio.
type Matcher struct {
	minPercent int
	topK       int
}

// New creates a Matcher with the portal's historical defaults: peers
// strictly above 30% similarity, top 5.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		minPercent: defaultMinSimilarityPercent,
		topK:       defaultTopK,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Percent computes the aggregate similarity of two count vectors as a
// rounded percentage. The formula is symmetric in its operands.
//
// Per category where at least one side is nonzero:
//
//	sim = (max(a,b) - |a-b|) / max(a,b)
//
// Categories with sim <= 0.5 carry no signal and are excluded from both
// the numerator and the denominator, so a single well-matched category can
// yield 100%.
func Percent(a, b model.CountVector) int {
	sum := 0.0
	included := 0
	for _, c := range category.All() {
		ca, cb := a[c], b[c]
		if ca == 0 && cb == 0 {
			continue
		}
		maxC := float64(ca)
		if cb > ca {
			maxC = float64(cb)
		}
		diff := math.Abs(float64(ca) - float64(cb))
		sim := (maxC - diff) / maxC
		if sim > inclusionThreshold {
			sum += sim
			included++
		}
	}
	if included == 0 {
		return 0
	}
	return int(math.Round(100 * sum / float64(included)))
}

// FindSimilar ranks the population by similarity to the target vector and
// returns at most topK peers strictly above the minimum percentage. The
// target itself is excluded. Equal percentages are ordered by peer id so
// reruns are deterministic.
func (m *Matcher) FindSimilar(targetID int64, target model.CountVector, peers []Peer) []model.SimilarityResult {
	matches := make([]model.SimilarityResult, 0, len(peers))
	for _, p := range peers {
		if p.ID == targetID {
			continue
		}
		percent := Percent(target, p.Vector)
		if percent <= m.minPercent {
			continue
		}
		matches = append(matches, model.SimilarityResult{
			PeerID:            p.ID,
			SimilarityPercent: percent,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].SimilarityPercent != matches[j].SimilarityPercent {
			return matches[i].SimilarityPercent > matches[j].SimilarityPercent
		}
		return matches[i].PeerID < matches[j].PeerID
	})

	if len(matches) > m.topK {
		matches = matches[:m.topK]
	}
	return matches
}
