package domain

import "context"

// Analyzer is the NLP collaborator boundary. Each method maps to one
// upstream call; failures surface as *AnalysisError.
type Analyzer interface {
	DetectSentiment(ctx context.Context, text string) (Sentiment, SentimentScores, error)
	ExtractKeyPhrases(ctx context.Context, text string, max int) ([]KeyPhrase, error)
	DetectEntities(ctx context.Context, text string, max int) ([]Entity, error)
	DetectLanguage(ctx context.Context, text string) (Language, error)
}

// FeedbackRepository is the document-store boundary.
type FeedbackRepository interface {
	// Put writes one record. Callers on the analyze path treat failures as
	// best-effort: log and continue.
	Put(ctx context.Context, rec FeedbackRecord) error
	// Scan returns up to limit records in store-defined order. No ordering
	// guarantee is imposed here.
	Scan(ctx context.Context, limit int) ([]FeedbackRecord, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
