// Package ranking derives ranks, subgroup ranks, and leaderboard slices
// from a scored population.
package ranking

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Member is one scored row of the ranking population.
type Member struct {
	ID          int64
	Name        string
	Department  string
	TotalPoints int
}

// Result holds the ranks derived for one target. A rank of 0 means the
// target is not ranked in that scope.
type Result struct {
	TargetID       int64
	PopulationRank int
	PopulationSize int
	SubgroupRank   int
	SubgroupSize   int
	TargetPoints   int

	// Sorted is the full population in rank order; SubgroupSorted is the
	// target's department in rank order, empty when the target has no
	// department.
	Sorted         []Member
	SubgroupSorted []Member
}

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithLocale sets the collation locale used for name tie-breaks.
func WithLocale(tag language.Tag) Option {
	return func(r *Ranker) {
		r.locale = tag
	}
}

// Ranker sorts populations deterministically: descending by points, ties
// broken by locale-aware name collation.
type Ranker struct {
	locale language.Tag
}

// New creates a Ranker. The default locale is the Unicode root collation.
func New(opts ...Option) *Ranker {
	r := &Ranker{
		locale: language.Und,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Sort returns a rank-ordered copy of the population. The input is never
// mutated; equal keys keep their input order, so reruns on the same input
// are byte-identical.
func (r *Ranker) Sort(pop []Member) []Member {
	sorted := make([]Member, len(pop))
	copy(sorted, pop)

	// A collate.Collator carries iteration state, so build one per call
	// rather than sharing across concurrent requests.
	col := collate.New(r.locale)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return col.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})

	return sorted
}

// Rank computes the target's population and subgroup ranks. An empty
// population or an absent target yields zero ranks, never an error.
func (r *Ranker) Rank(pop []Member, targetID int64) Result {
	sorted := r.Sort(pop)

	res := Result{
		TargetID:       targetID,
		PopulationSize: len(sorted),
		Sorted:         sorted,
		SubgroupSorted: []Member{},
	}

	var target Member
	found := false
	for i, m := range sorted {
		if m.ID == targetID {
			res.PopulationRank = i + 1
			res.TargetPoints = m.TotalPoints
			target = m
			found = true
			break
		}
	}

	// A target with no department is excluded from every subgroup
	// ranking: subgroup size 0, rank 0.
	if !found || target.Department == "" {
		return res
	}

	subgroup := make([]Member, 0)
	for _, m := range pop {
		if m.Department == target.Department {
			subgroup = append(subgroup, m)
		}
	}
	res.SubgroupSorted = r.Sort(subgroup)
	res.SubgroupSize = len(res.SubgroupSorted)
	for i, m := range res.SubgroupSorted {
		if m.ID == targetID {
			res.SubgroupRank = i + 1
			break
		}
	}

	return res
}

// TopN returns the first n members of a rank-ordered slice.
func TopN(sorted []Member, n int) []Member {
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]Member, n)
	copy(out, sorted[:n])
	return out
}
