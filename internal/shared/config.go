package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string

	AWSRegion     string
	DynamoTable   string
	S3Bucket      string
	Language      string
	ComprehendRPS int

	MaxTextLength int
	MaxKeyPhrases int
	MaxEntities   int

	DefaultLimit int
	MaxLimit     int

	AllowedOrigins string

	RedisAddr string
	RedisPass string
	RedisDB   int
	CacheTTL  time.Duration

	SeedWorkers int
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		AWSRegion:      env("AWS_REGION", "us-east-1"),
		DynamoTable:    env("DYNAMODB_TABLE", "CustomerFeedback"),
		S3Bucket:       env("S3_BUCKET", "customer-feedback-bucket"),
		Language:       env("COMPREHEND_LANGUAGE", "en"),
		ComprehendRPS:  atoi("COMPREHEND_RPS", 10),
		MaxTextLength:  atoi("MAX_TEXT_LENGTH", 5000),
		MaxKeyPhrases:  atoi("MAX_KEY_PHRASES", 5),
		MaxEntities:    atoi("MAX_ENTITIES", 5),
		DefaultLimit:   atoi("DEFAULT_LIMIT", 50),
		MaxLimit:       atoi("MAX_LIMIT", 1000),
		AllowedOrigins: env("ALLOWED_ORIGINS", "*"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
		SeedWorkers:    atoi("SEED_WORKERS", 4),
	}
	if c.MaxLimit < c.DefaultLimit {
		log.Warn().Int("default", c.DefaultLimit).Int("max", c.MaxLimit).
			Msg("MAX_LIMIT below DEFAULT_LIMIT; scans will be capped at MAX_LIMIT")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
