package comprehendad

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	ctypes "github.com/aws/aws-sdk-go-v2/service/comprehend/types"
	"golang.org/x/time/rate"

	"feedback_insights/internal/adapters/observability"
	"feedback_insights/internal/domain"
)

// API is the slice of the Comprehend client this adapter consumes. Tests
// stub it; production passes *comprehend.Client.
type API interface {
	DetectSentiment(ctx context.Context, params *comprehend.DetectSentimentInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectSentimentOutput, error)
	DetectKeyPhrases(ctx context.Context, params *comprehend.DetectKeyPhrasesInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectKeyPhrasesOutput, error)
	DetectEntities(ctx context.Context, params *comprehend.DetectEntitiesInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectEntitiesOutput, error)
	DetectDominantLanguage(ctx context.Context, params *comprehend.DetectDominantLanguageInput, optFns ...func(*comprehend.Options)) (*comprehend.DetectDominantLanguageOutput, error)
}

type Client struct {
	api  API
	lang ctypes.LanguageCode
	rl   *rate.Limiter
}

// New wraps a Comprehend client handle. rps bounds outbound calls
// client-side; Comprehend enforces per-operation TPS quotas.
func New(api API, language string, rps int) *Client {
	if language == "" {
		language = "en"
	}
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		api:  api,
		lang: ctypes.LanguageCode(language),
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) DetectSentiment(ctx context.Context, text string) (domain.Sentiment, domain.SentimentScores, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", domain.SentimentScores{}, err
	}
	start := time.Now()
	out, err := c.api.DetectSentiment(ctx, &comprehend.DetectSentimentInput{
		Text:         aws.String(text),
		LanguageCode: c.lang,
	})
	observability.ObserveExternal("comprehend", "detect_sentiment", err, time.Since(start))
	if err != nil {
		return "", domain.SentimentScores{}, &domain.AnalysisError{Op: "detect_sentiment", Err: err}
	}
	var scores domain.SentimentScores
	if s := out.SentimentScore; s != nil {
		scores = domain.SentimentScores{
			Positive: float64(aws.ToFloat32(s.Positive)),
			Negative: float64(aws.ToFloat32(s.Negative)),
			Neutral:  float64(aws.ToFloat32(s.Neutral)),
			Mixed:    float64(aws.ToFloat32(s.Mixed)),
		}
	}
	return domain.Sentiment(out.Sentiment), scores, nil
}

// ExtractKeyPhrases returns at most max phrases, keeping upstream relevance
// order. No re-sort.
func (c *Client) ExtractKeyPhrases(ctx context.Context, text string, max int) ([]domain.KeyPhrase, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := c.api.DetectKeyPhrases(ctx, &comprehend.DetectKeyPhrasesInput{
		Text:         aws.String(text),
		LanguageCode: c.lang,
	})
	observability.ObserveExternal("comprehend", "detect_key_phrases", err, time.Since(start))
	if err != nil {
		return nil, &domain.AnalysisError{Op: "detect_key_phrases", Err: err}
	}
	phrases := out.KeyPhrases
	if max > 0 && len(phrases) > max {
		phrases = phrases[:max]
	}
	res := make([]domain.KeyPhrase, 0, len(phrases))
	for _, p := range phrases {
		res = append(res, domain.KeyPhrase{
			Text:  aws.ToString(p.Text),
			Score: float64(aws.ToFloat32(p.Score)),
		})
	}
	return res, nil
}

func (c *Client) DetectEntities(ctx context.Context, text string, max int) ([]domain.Entity, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := c.api.DetectEntities(ctx, &comprehend.DetectEntitiesInput{
		Text:         aws.String(text),
		LanguageCode: c.lang,
	})
	observability.ObserveExternal("comprehend", "detect_entities", err, time.Since(start))
	if err != nil {
		return nil, &domain.AnalysisError{Op: "detect_entities", Err: err}
	}
	ents := out.Entities
	if max > 0 && len(ents) > max {
		ents = ents[:max]
	}
	res := make([]domain.Entity, 0, len(ents))
	for _, e := range ents {
		res = append(res, domain.Entity{
			Text:  aws.ToString(e.Text),
			Type:  string(e.Type),
			Score: float64(aws.ToFloat32(e.Score)),
		})
	}
	return res, nil
}

// DetectLanguage returns the dominant language, defaulting to ("en", 1.0)
// when Comprehend reports none.
func (c *Client) DetectLanguage(ctx context.Context, text string) (domain.Language, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.Language{}, err
	}
	start := time.Now()
	out, err := c.api.DetectDominantLanguage(ctx, &comprehend.DetectDominantLanguageInput{
		Text: aws.String(text),
	})
	observability.ObserveExternal("comprehend", "detect_dominant_language", err, time.Since(start))
	if err != nil {
		return domain.Language{}, &domain.AnalysisError{Op: "detect_dominant_language", Err: err}
	}
	if len(out.Languages) == 0 {
		return domain.Language{Code: "en", Score: 1.0}, nil
	}
	dom := out.Languages[0]
	return domain.Language{
		Code:  aws.ToString(dom.LanguageCode),
		Score: float64(aws.ToFloat32(dom.Score)),
	}, nil
}
