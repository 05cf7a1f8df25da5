package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"feedback_insights/internal/domain"
)

type AnalyzeInput struct {
	Text       string
	CustomerID string
	Metadata   map[string]any
}

type AnalysisConfig struct {
	MaxTextLength int
	MaxKeyPhrases int
	MaxEntities   int
}

// AnalysisService validates feedback, runs the four NLP calls, assembles the
// canonical record and stores it best-effort.
type AnalysisService struct {
	nlp  domain.Analyzer
	repo domain.FeedbackRepository
	cfg  AnalysisConfig
	now  func() time.Time
}

func NewAnalysisService(nlp domain.Analyzer, repo domain.FeedbackRepository, cfg AnalysisConfig) *AnalysisService {
	return &AnalysisService{nlp: nlp, repo: repo, cfg: cfg, now: time.Now}
}

// Analyze runs the full analyze operation. The four upstream calls are
// independent reads of the same immutable text, so they run concurrently;
// the first failure cancels the rest and aborts the operation with no
// partial result. A storage failure does NOT fail the operation: the caller
// still gets the analysis, durability is best-effort.
func (s *AnalysisService) Analyze(ctx context.Context, in AnalyzeInput) (domain.FeedbackRecord, error) {
	if err := ValidateFeedbackText(in.Text, s.cfg.MaxTextLength); err != nil {
		return domain.FeedbackRecord{}, err
	}

	var (
		label   domain.Sentiment
		scores  domain.SentimentScores
		phrases []domain.KeyPhrase
		ents    []domain.Entity
		lang    domain.Language
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		label, scores, err = s.nlp.DetectSentiment(gctx, in.Text)
		return err
	})
	g.Go(func() error {
		var err error
		phrases, err = s.nlp.ExtractKeyPhrases(gctx, in.Text, s.cfg.MaxKeyPhrases)
		return err
	})
	g.Go(func() error {
		var err error
		ents, err = s.nlp.DetectEntities(gctx, in.Text, s.cfg.MaxEntities)
		return err
	})
	g.Go(func() error {
		var err error
		lang, err = s.nlp.DetectLanguage(gctx, in.Text)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.FeedbackRecord{}, err
	}

	now := s.now().UTC()
	rec := buildRecord(in, newFeedbackID(now), now, label, scores, phrases, ents, lang)

	if err := s.repo.Put(ctx, rec); err != nil {
		log.Warn().Err(err).Str("feedback_id", rec.FeedbackID).
			Msg("storing feedback failed; returning analysis anyway")
	}
	return rec, nil
}

// buildRecord assembles the canonical record, filling the documented
// defaults for missing fields.
func buildRecord(in AnalyzeInput, id string, ts time.Time,
	label domain.Sentiment, scores domain.SentimentScores,
	phrases []domain.KeyPhrase, ents []domain.Entity, lang domain.Language) domain.FeedbackRecord {

	cid := in.CustomerID
	if cid == "" {
		cid = domain.AnonymousCustomerID
	}
	meta := in.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	if phrases == nil {
		phrases = []domain.KeyPhrase{}
	}
	if ents == nil {
		ents = []domain.Entity{}
	}
	return domain.FeedbackRecord{
		FeedbackID:      id,
		CustomerID:      cid,
		FeedbackText:    in.Text,
		Timestamp:       ts.Format(time.RFC3339),
		Sentiment:       label,
		SentimentScores: scores,
		KeyPhrases:      phrases,
		Entities:        ents,
		Language:        lang,
		Metadata:        meta,
	}
}

// newFeedbackID composes a millisecond timestamp with a short random suffix.
// The prefix keeps ids roughly sortable by creation time; the suffix avoids
// collisions between requests landing in the same millisecond.
func newFeedbackID(now time.Time) string {
	return fmt.Sprintf("feedback_%d_%s", now.UnixMilli(), uuid.NewString()[:8])
}
