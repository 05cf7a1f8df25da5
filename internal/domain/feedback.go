package domain

// Sentiment is the coarse polarity label Comprehend assigns to a text.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentMixed    Sentiment = "MIXED"

	// SentimentUnknown is the fallback bucket for labels outside the fixed
	// four. Upstream values are never rejected, only bucketed.
	SentimentUnknown Sentiment = "UNKNOWN"
)

// KnownSentiments lists the fixed four-way enumeration in display order.
var KnownSentiments = []Sentiment{
	SentimentPositive,
	SentimentNegative,
	SentimentNeutral,
	SentimentMixed,
}

// Known reports whether s is one of the fixed four labels.
func (s Sentiment) Known() bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentMixed:
		return true
	}
	return false
}

// SentimentScores holds Comprehend's per-class confidence values.
// No invariant that they sum to 1; upstream output is stored as-is.
type SentimentScores struct {
	Positive float64 `json:"positive" dynamodbav:"positive"`
	Negative float64 `json:"negative" dynamodbav:"negative"`
	Neutral  float64 `json:"neutral" dynamodbav:"neutral"`
	Mixed    float64 `json:"mixed" dynamodbav:"mixed"`
}

type KeyPhrase struct {
	Text  string  `json:"text" dynamodbav:"text"`
	Score float64 `json:"score" dynamodbav:"score"`
}

type Entity struct {
	Text  string  `json:"text" dynamodbav:"text"`
	Type  string  `json:"type" dynamodbav:"type"`
	Score float64 `json:"score" dynamodbav:"score"`
}

type Language struct {
	Code  string  `json:"language_code" dynamodbav:"language_code"`
	Score float64 `json:"score" dynamodbav:"score"`
}

// AnonymousCustomerID is used when a request carries no customer id.
const AnonymousCustomerID = "anonymous"

// FeedbackRecord is the canonical analysis result. Built exactly once at
// analysis time, immutable afterwards.
type FeedbackRecord struct {
	FeedbackID      string          `json:"feedback_id" dynamodbav:"feedback_id"`
	CustomerID      string          `json:"customer_id" dynamodbav:"customer_id"`
	FeedbackText    string          `json:"feedback_text" dynamodbav:"feedback_text"`
	Timestamp       string          `json:"timestamp" dynamodbav:"timestamp"`
	Sentiment       Sentiment       `json:"sentiment" dynamodbav:"sentiment"`
	SentimentScores SentimentScores `json:"sentiment_scores" dynamodbav:"sentiment_scores"`
	KeyPhrases      []KeyPhrase     `json:"key_phrases" dynamodbav:"key_phrases"`
	Entities        []Entity        `json:"entities" dynamodbav:"entities"`
	Language        Language        `json:"language" dynamodbav:"language"`
	Metadata        map[string]any  `json:"metadata" dynamodbav:"metadata"`
}

// Category reads metadata["category"], falling back to "uncategorized" when
// the key is absent, the value is not a string, or metadata is nil.
func (r FeedbackRecord) Category() string {
	if c, ok := r.Metadata["category"].(string); ok && c != "" {
		return c
	}
	return "uncategorized"
}
