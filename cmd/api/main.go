package main

import (
	"context"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"

	comprehendad "feedback_insights/internal/adapters/comprehend"
	server "feedback_insights/internal/adapters/http_server"
	"feedback_insights/internal/adapters/observability"
	redisad "feedback_insights/internal/adapters/redis"
	"feedback_insights/internal/app"
	"feedback_insights/internal/shared"
	"feedback_insights/internal/storage/dynamo"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	awscfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Fatal().Err(err).Msg("loading AWS config failed")
	}

	// deps
	nlp := comprehendad.New(comprehend.NewFromConfig(awscfg), cfg.Language, cfg.ComprehendRPS)
	repo := dynamo.New(dynamodb.NewFromConfig(awscfg), cfg.DynamoTable)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	analysis := app.NewAnalysisService(nlp, repo, app.AnalysisConfig{
		MaxTextLength: cfg.MaxTextLength,
		MaxKeyPhrases: cfg.MaxKeyPhrases,
		MaxEntities:   cfg.MaxEntities,
	})
	analytics := app.NewAnalyticsService(repo, cache, cfg.CacheTTL, cfg.DefaultLimit, cfg.MaxLimit)

	// http
	srv := server.New(cfg.AllowedOrigins)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Analysis: analysis, Analytics: analytics})
	observability.Serve(cfg.MetricsAddr, reg)

	log.Info().Str("addr", cfg.HTTPAddr).Str("table", cfg.DynamoTable).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
