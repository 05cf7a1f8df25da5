package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"

	"feedback_insights/internal/adapters/observability"
	"feedback_insights/internal/domain"
)

// API is the slice of the DynamoDB client the repo consumes.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

type Repo struct {
	api   API
	table string
}

func New(api API, table string) *Repo {
	return &Repo{api: api, table: table}
}

// Put writes one record. Score floats marshal to DynamoDB Numbers via
// attributevalue, which handles the float/decimal conversion the store's
// numeric type needs.
func (r *Repo) Put(ctx context.Context, rec domain.FeedbackRecord) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal feedback %s: %w", rec.FeedbackID, err)
	}
	start := time.Now()
	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	observability.ObserveExternal("dynamodb", "put_item", err, time.Since(start))
	if err != nil {
		return fmt.Errorf("put feedback %s: %w", rec.FeedbackID, err)
	}
	return nil
}

// Scan reads up to limit records in store order. One page only, matching
// the bounded-scan contract; items that fail to unmarshal are skipped so a
// single malformed row cannot poison a whole analytics response.
func (r *Repo) Scan(ctx context.Context, limit int) ([]domain.FeedbackRecord, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.table)}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	start := time.Now()
	out, err := r.api.Scan(ctx, in)
	observability.ObserveExternal("dynamodb", "scan", err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.table, err)
	}
	recs := make([]domain.FeedbackRecord, 0, len(out.Items))
	for _, item := range out.Items {
		var rec domain.FeedbackRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			log.Warn().Err(err).Str("table", r.table).Msg("skipping unmarshalable feedback item")
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
