// Package model contains domain values passed between layers.
package model

import "github.com/facultymetrics/facultyrank/internal/domain/category"

// User is a read-only row from the portal's user directory.
type User struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Department    string `json:"department,omitempty"`
	AcademicTitle string `json:"academic_title,omitempty"`
}

// ActivityRecord is a snapshot of one activity row owned by the portal's
// CRUD layer. The engine only reads these; the Status/Kind/Level triple is
// interpreted per category by the scoring rules.
type ActivityRecord struct {
	ID       int64             `json:"id"`
	UserID   int64             `json:"user_id"`
	Category category.Category `json:"category"`
	Title    string            `json:"title"`
	Year     int               `json:"year"`

	// Status carries completion state: "published", "accepted",
	// "completed", "inProgress".
	Status string `json:"status,omitempty"`
	// Kind carries the role: "chair", "member", "speaker", "attendee",
	// "organizer", "editor", "reviewer", "head", "delivered".
	Kind string `json:"kind,omitempty"`
	// Level carries the grade or scope: quartiles "q1".."q4" for
	// publications, degree levels "phd"/"masters" for supervision,
	// "international"/"national" for conference scope.
	Level string `json:"level,omitempty"`
}

// ScoreItem is one scored unit derived from one ActivityRecord.
// Points is never negative.
type ScoreItem struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Year    int    `json:"year"`
	Points  int    `json:"points"`
	Details string `json:"details,omitempty"`
}

// ScoreBreakdown holds one researcher's scored items per category plus the
// derived subtotals. It is built once per scoring request and never
// mutated afterwards.
type ScoreBreakdown struct {
	Items       map[category.Category][]ScoreItem `json:"breakdown"`
	Summary     map[category.Category]int         `json:"summary"`
	TotalPoints int                               `json:"total_points"`
}

// NewScoreBreakdown derives the summary and total from per-category items.
// Every category in the closed set gets a summary entry, so subtotals are
// always present in the serialized form even when a category is empty.
func NewScoreBreakdown(items map[category.Category][]ScoreItem) ScoreBreakdown {
	if items == nil {
		items = make(map[category.Category][]ScoreItem, category.Count)
	}
	summary := make(map[category.Category]int, category.Count)
	total := 0
	for _, c := range category.All() {
		subtotal := 0
		for _, item := range items[c] {
			subtotal += item.Points
		}
		summary[c] = subtotal
		total += subtotal
	}
	return ScoreBreakdown{Items: items, Summary: summary, TotalPoints: total}
}

// ZeroBreakdown returns an empty breakdown with zero subtotals for every
// category. Used when a whole-user computation fails inside a batch.
func ZeroBreakdown() ScoreBreakdown {
	return NewScoreBreakdown(nil)
}

// CountVector projects the breakdown onto per-category item counts. The
// similarity matcher compares portfolios by these counts, not by points.
func (b ScoreBreakdown) CountVector() CountVector {
	v := make(CountVector, len(b.Items))
	for c, items := range b.Items {
		if len(items) > 0 {
			v[c] = len(items)
		}
	}
	return v
}

// CountVector maps categories to activity item counts. Zero counts are
// omitted; absence and zero are equivalent.
type CountVector map[category.Category]int

// RankedMember is one row of a sorted leaderboard slice.
type RankedMember struct {
	Rank       int    `json:"rank"`
	UserID     int64  `json:"user_id"`
	Name       string `json:"name"`
	Department string `json:"department,omitempty"`
	Points     int    `json:"points"`
}

// SimilarityResult names one peer and how alike their activity portfolio
// is to the target's, as a rounded percentage.
type SimilarityResult struct {
	PeerID            int64 `json:"peer_id"`
	SimilarityPercent int   `json:"similarity_percent"`
}

// RankResult is the full ranking view for one target user. Recomputed on
// every request, never persisted. A rank of 0 means "not ranked".
type RankResult struct {
	TargetID       int64              `json:"target_id"`
	PopulationRank int                `json:"population_rank"`
	PopulationSize int                `json:"population_size"`
	SubgroupRank   int                `json:"subgroup_rank"`
	SubgroupSize   int                `json:"subgroup_size"`
	TargetPoints   int                `json:"target_points"`
	Top3           []RankedMember     `json:"top3"`
	Top10          []RankedMember     `json:"top10"`
	SubgroupTop5   []RankedMember     `json:"subgroup_top5"`
	SimilarPeers   []SimilarityResult `json:"similar_peers"`
}
