package main

import (
	"context"
	"sync"
	"sync/atomic"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	comprehendad "feedback_insights/internal/adapters/comprehend"
	"feedback_insights/internal/adapters/observability"
	"feedback_insights/internal/app"
	"feedback_insights/internal/shared"
	"feedback_insights/internal/storage/dynamo"
)

// Pushes the built-in sample feedback through the full analyze path so a
// fresh table has something for the analytics endpoint to aggregate.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("table", cfg.DynamoTable).
		Int("workers", cfg.SeedWorkers).
		Int("samples", len(shared.Samples)).
		Msg("seeder starting")

	awscfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Fatal().Err(err).Msg("loading AWS config failed")
	}

	nlp := comprehendad.New(comprehend.NewFromConfig(awscfg), cfg.Language, cfg.ComprehendRPS)
	repo := dynamo.New(dynamodb.NewFromConfig(awscfg), cfg.DynamoTable)
	analysis := app.NewAnalysisService(nlp, repo, app.AnalysisConfig{
		MaxTextLength: cfg.MaxTextLength,
		MaxKeyPhrases: cfg.MaxKeyPhrases,
		MaxEntities:   cfg.MaxEntities,
	})

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup
	var ok, failed int64

	for _, sample := range shared.Samples {
		sample := sample

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(s shared.SampleFeedback) {
			defer wg.Done()
			defer sem.Release(1)

			rec, err := analysis.Analyze(ctx, app.AnalyzeInput{
				Text:       s.Feedback,
				CustomerID: s.CustomerID,
				Metadata: map[string]any{
					"category":           s.Category,
					"expected_sentiment": s.ExpectedSentiment,
				},
			})
			if err != nil {
				atomic.AddInt64(&failed, 1)
				log.Warn().Str("customer", s.CustomerID).Err(err).Msg("seed failed")
				return
			}
			atomic.AddInt64(&ok, 1)
			log.Info().
				Str("feedback_id", rec.FeedbackID).
				Str("customer", rec.CustomerID).
				Str("expected", s.ExpectedSentiment).
				Str("detected", string(rec.Sentiment)).
				Msg("seed ok")
		}(sample)
	}

	wg.Wait()
	log.Info().Int64("ok", ok).Int64("failed", failed).Msg("seeding completed")
}
