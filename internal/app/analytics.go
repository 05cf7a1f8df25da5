package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"feedback_insights/internal/domain"
)

// AnalyticsService serves aggregated snapshots over a bounded scan of stored
// records. It never fails: a scan error (including a missing table) degrades
// to the well-formed empty snapshot.
type AnalyticsService struct {
	repo         domain.FeedbackRepository
	cache        domain.Cache // nil disables caching
	ttl          time.Duration
	defaultLimit int
	maxLimit     int
	now          func() time.Time
}

func NewAnalyticsService(repo domain.FeedbackRepository, cache domain.Cache, ttl time.Duration, defaultLimit, maxLimit int) *AnalyticsService {
	return &AnalyticsService{
		repo:         repo,
		cache:        cache,
		ttl:          ttl,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		now:          time.Now,
	}
}

// Snapshot scans up to limit records and aggregates them. Cached per
// effective limit; a cached snapshot keeps its original timestamp so
// staleness stays visible to the caller.
func (s *AnalyticsService) Snapshot(ctx context.Context, limit int) Analytics {
	limit = s.clampLimit(limit)
	key := fmt.Sprintf("analytics:%d", limit)

	if s.cache != nil {
		var cached Analytics
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached
		}
	}

	records, err := s.repo.Scan(ctx, limit)
	if err != nil {
		log.Warn().Err(err).Int("limit", limit).
			Msg("feedback scan failed; serving empty analytics")
		records = nil
	}

	a := Aggregate(records)
	a.Timestamp = s.now().UTC().Format(time.RFC3339)

	// Don't cache the degraded empty snapshot a scan failure produces.
	if s.cache != nil && err == nil {
		_ = s.cache.Set(ctx, key, a, int(s.ttl.Seconds()))
	}
	return a
}

func (s *AnalyticsService) clampLimit(limit int) int {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	return limit
}
