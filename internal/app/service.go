// Package service provides the core business service that implements
// the dependencies required by the HTTP API: per-user scoring, population
// batches, ranking, and peer matching.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/facultymetrics/facultyrank/internal/adapters/repository"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
	"github.com/facultymetrics/facultyrank/internal/domain/ranking"
	"github.com/facultymetrics/facultyrank/internal/domain/scoring"
	"github.com/facultymetrics/facultyrank/internal/domain/similarity"
	"github.com/facultymetrics/facultyrank/pkg/fanout"
	"github.com/facultymetrics/facultyrank/pkg/logger"
	"github.com/facultymetrics/facultyrank/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultBatchConcurrency = 4
	defaultSnapshotTTL      = time.Minute

	top3Size         = 3
	top10Size        = 10
	subgroupTop5Size = 5
)

// populationSnapshot is one scored population, reused until it expires.
type populationSnapshot struct {
	users      []model.User
	breakdowns map[int64]model.ScoreBreakdown
	takenAt    time.Time
}

// Service implements the API dependencies for the scoring engine.
type Service struct {
	mu sync.RWMutex

	// Core components
	source  repository.Source
	calc    *scoring.Calculator
	ranker  *ranking.Ranker
	matcher *similarity.Matcher

	// Configuration
	batchConcurrency     int
	snapshotTTL          time.Duration
	minSimilarityPercent int
	similarityTopK       int
	locale               language.Tag

	// Snapshot cache
	snapMu   sync.Mutex
	snapshot *populationSnapshot

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithBatchConcurrency bounds in-flight per-user computations during a
// population batch.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// WithSnapshotTTL sets how long a scored population snapshot stays fresh.
func WithSnapshotTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.snapshotTTL = ttl
		}
	}
}

// WithMinSimilarityPercent sets the exclusive lower bound for peer matches.
func WithMinSimilarityPercent(percent int) Option {
	return func(s *Service) {
		if percent >= 0 {
			s.minSimilarityPercent = percent
		}
	}
}

// WithSimilarityTopK caps how many similar peers a rank response carries.
func WithSimilarityTopK(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.similarityTopK = k
		}
	}
}

// WithRankingLocale sets the collation locale for name tie-breaks.
func WithRankingLocale(tag language.Tag) Option {
	return func(s *Service) {
		s.locale = tag
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service over the given record source.
func New(source repository.Source, opts ...Option) *Service {
	s := &Service{
		source:               source,
		batchConcurrency:     defaultBatchConcurrency,
		snapshotTTL:          defaultSnapshotTTL,
		minSimilarityPercent: 30,
		similarityTopK:       5,
		locale:               language.Und,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.calc = scoring.NewCalculator(s.source, scoring.WithLogger(s.logger.Named("scoring")))
	s.ranker = ranking.New(ranking.WithLocale(s.locale))
	s.matcher = similarity.New(
		similarity.WithMinSimilarityPercent(s.minSimilarityPercent),
		similarity.WithTopK(s.similarityTopK),
	)

	metrics.UpdateBatchConcurrency(s.batchConcurrency)

	s.started = true
	s.logger.Info(ctx, "scoring service started",
		logger.Int("batchConcurrency", s.batchConcurrency),
		logger.Any("snapshotTTL", s.snapshotTTL),
	)

	return nil
}

// Stop releases the service's resources.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if closer, ok := s.source.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "scoring service stopped")
}

// Score computes one user's breakdown. Unknown or ineligible users are a
// caller contract violation and surface as ErrNotFound; degraded category
// fetches do not.
func (s *Service) Score(ctx context.Context, userID int64) (model.ScoreBreakdown, error) {
	if _, err := s.lookupUser(ctx, userID); err != nil {
		return model.ScoreBreakdown{}, err
	}

	start := time.Now()
	breakdown := s.calc.ComputeScore(ctx, userID)
	metrics.RecordScoringLatency(float64(time.Since(start).Milliseconds()))

	return breakdown, nil
}

// Rank computes the full ranking view for one user: population and
// subgroup ranks, leaderboard prefixes, and similar peers.
func (s *Service) Rank(ctx context.Context, userID int64) (model.RankResult, error) {
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return model.RankResult{}, err
	}

	if _, ok := snap.breakdowns[userID]; !ok {
		return model.RankResult{}, fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
	}

	members := make([]ranking.Member, 0, len(snap.users))
	for _, u := range snap.users {
		members = append(members, ranking.Member{
			ID:          u.ID,
			Name:        u.Name,
			Department:  u.Department,
			TotalPoints: snap.breakdowns[u.ID].TotalPoints,
		})
	}

	res := s.ranker.Rank(members, userID)

	peers := make([]similarity.Peer, 0, len(snap.users))
	for _, u := range snap.users {
		peers = append(peers, similarity.Peer{
			ID:     u.ID,
			Vector: snap.breakdowns[u.ID].CountVector(),
		})
	}
	similar := s.matcher.FindSimilar(userID, snap.breakdowns[userID].CountVector(), peers)

	return model.RankResult{
		TargetID:       userID,
		PopulationRank: res.PopulationRank,
		PopulationSize: res.PopulationSize,
		SubgroupRank:   res.SubgroupRank,
		SubgroupSize:   res.SubgroupSize,
		TargetPoints:   res.TargetPoints,
		Top3:           toRanked(ranking.TopN(res.Sorted, top3Size)),
		Top10:          toRanked(ranking.TopN(res.Sorted, top10Size)),
		SubgroupTop5:   toRanked(ranking.TopN(res.SubgroupSorted, subgroupTop5Size)),
		SimilarPeers:   similar,
	}, nil
}

// Leaderboard returns the top n members of the scored population.
func (s *Service) Leaderboard(ctx context.Context, n int) ([]model.RankedMember, error) {
	snap, err := s.currentSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	members := make([]ranking.Member, 0, len(snap.users))
	for _, u := range snap.users {
		members = append(members, ranking.Member{
			ID:          u.ID,
			Name:        u.Name,
			Department:  u.Department,
			TotalPoints: snap.breakdowns[u.ID].TotalPoints,
		})
	}

	sorted := s.ranker.Sort(members)
	return toRanked(ranking.TopN(sorted, n)), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":          s.started,
		"batchConcurrency": s.batchConcurrency,
		"snapshotTTLMs":    s.snapshotTTL.Milliseconds(),
	}

	s.snapMu.Lock()
	if s.snapshot != nil {
		stats["populationSize"] = len(s.snapshot.users)
		stats["snapshotAgeMs"] = time.Since(s.snapshot.takenAt).Milliseconds()
	}
	s.snapMu.Unlock()

	return stats
}

// lookupUser finds a user in the eligible directory.
func (s *Service) lookupUser(ctx context.Context, userID int64) (model.User, error) {
	users, err := s.source.ListEligibleUsers(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("list eligible users: %w", err)
	}
	for _, u := range users {
		if u.ID == userID {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
}

// currentSnapshot returns the cached scored population, refreshing it when
// the TTL has lapsed.
func (s *Service) currentSnapshot(ctx context.Context) (*populationSnapshot, error) {
	s.snapMu.Lock()
	defer s.snapMu.Unlock()

	if s.snapshot != nil && time.Since(s.snapshot.takenAt) < s.snapshotTTL {
		metrics.RecordCacheHit()
		return s.snapshot, nil
	}
	metrics.RecordCacheMiss()

	snap, err := s.scorePopulation(ctx)
	if err != nil {
		return nil, err
	}
	s.snapshot = snap
	return snap, nil
}

// scorePopulation batch-scores every eligible user under the configured
// concurrency ceiling. One user's failure degrades to a zero breakdown and
// never aborts the batch.
func (s *Service) scorePopulation(ctx context.Context) (*populationSnapshot, error) {
	users, err := s.source.ListEligibleUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list eligible users: %w", err)
	}

	start := time.Now()
	breakdowns := fanout.Map(ctx, users, s.batchConcurrency, func(ctx context.Context, u model.User) model.ScoreBreakdown {
		return s.scoreUserSafe(ctx, u.ID)
	})
	metrics.RecordBatchRun(float64(time.Since(start).Milliseconds()))
	metrics.UpdatePopulationSize(len(users))

	byID := make(map[int64]model.ScoreBreakdown, len(users))
	for i, u := range users {
		byID[u.ID] = breakdowns[i]
	}

	s.logger.Debug(ctx, "population scored",
		logger.Int("users", len(users)),
		logger.Int("concurrency", s.batchConcurrency),
	)

	return &populationSnapshot{
		users:      users,
		breakdowns: byID,
		takenAt:    time.Now(),
	}, nil
}

// scoreUserSafe makes the batch worker total: a panicking computation
// resolves to a zero-point breakdown instead of crashing the batch.
func (s *Service) scoreUserSafe(ctx context.Context, userID int64) (breakdown model.ScoreBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordScoringFailure()
			s.logger.Error(ctx, "scoring panicked; degrading user to zero breakdown",
				logger.Int64("userID", userID),
				logger.Any("panic", r),
			)
			breakdown = model.ZeroBreakdown()
		}
	}()
	return s.calc.ComputeScore(ctx, userID)
}

// toRanked decorates a sorted member slice with 1-based ranks.
func toRanked(members []ranking.Member) []model.RankedMember {
	out := make([]model.RankedMember, len(members))
	for i, m := range members {
		out[i] = model.RankedMember{
			Rank:       i + 1,
			UserID:     m.ID,
			Name:       m.Name,
			Department: m.Department,
			Points:     m.TotalPoints,
		}
	}
	return out
}
