package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "feedback_insights/internal/adapters/http_server"
	"feedback_insights/internal/app"
	"feedback_insights/internal/domain"
)

// ---------- in-memory collaborators ----------

// scriptedAnalyzer labels text by crude keyword match so the flow produces a
// mixed sentiment distribution without any network.
type scriptedAnalyzer struct{}

func (scriptedAnalyzer) DetectSentiment(ctx context.Context, text string) (domain.Sentiment, domain.SentimentScores, error) {
	switch {
	case strings.Contains(text, "love"):
		return domain.SentimentPositive, domain.SentimentScores{Positive: 0.9, Neutral: 0.1}, nil
	case strings.Contains(text, "broken"):
		return domain.SentimentNegative, domain.SentimentScores{Negative: 0.8, Neutral: 0.2}, nil
	default:
		return domain.SentimentNeutral, domain.SentimentScores{Neutral: 0.7}, nil
	}
}
func (scriptedAnalyzer) ExtractKeyPhrases(ctx context.Context, text string, max int) ([]domain.KeyPhrase, error) {
	return []domain.KeyPhrase{{Text: "phrase", Score: 0.9}}, nil
}
func (scriptedAnalyzer) DetectEntities(ctx context.Context, text string, max int) ([]domain.Entity, error) {
	return nil, nil
}
func (scriptedAnalyzer) DetectLanguage(ctx context.Context, text string) (domain.Language, error) {
	return domain.Language{Code: "en", Score: 1.0}, nil
}

type memRepo struct{ records []domain.FeedbackRecord }

func (m *memRepo) Put(ctx context.Context, rec domain.FeedbackRecord) error {
	m.records = append(m.records, rec)
	return nil
}
func (m *memRepo) Scan(ctx context.Context, limit int) ([]domain.FeedbackRecord, error) {
	if limit < len(m.records) {
		return m.records[:limit], nil
	}
	return m.records, nil
}

// ---------- the flow ----------

func TestAnalyzeThenAnalyticsFlow(t *testing.T) {
	repo := &memRepo{}
	analysis := app.NewAnalysisService(scriptedAnalyzer{}, repo, app.AnalysisConfig{
		MaxTextLength: 5000, MaxKeyPhrases: 5, MaxEntities: 5,
	})
	analytics := app.NewAnalyticsService(repo, nil, time.Minute, 50, 1000)

	srv := httpserver.New("*")
	srv.MountHandlers(&httpserver.Handlers{Analysis: analysis, Analytics: analytics})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	post := func(body string) *http.Response {
		t.Helper()
		resp, err := http.Post(ts.URL+"/v1/feedback", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("analyze request: %v", err)
		}
		return resp
	}

	// two positives from A, one negative from B, one neutral anonymous
	for i := 0; i < 2; i++ {
		resp := post(fmt.Sprintf(`{"feedback":"love it %d","customer_id":"A","metadata":{"category":"product"}}`, i))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("analyze status = %d", resp.StatusCode)
		}
		resp.Body.Close()
	}
	resp := post(`{"feedback":"it arrived broken","customer_id":"B","metadata":{"category":"shipping"}}`)
	resp.Body.Close()
	resp = post(`{"feedback":"it exists"}`)
	resp.Body.Close()

	// analytics over everything stored so far
	resp, err := http.Post(ts.URL+"/v1/analytics", "application/json", strings.NewReader(`{"limit":100}`))
	if err != nil {
		t.Fatalf("analytics request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("analytics status = %d", resp.StatusCode)
	}

	var out app.Analytics
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode analytics: %v", err)
	}

	if out.TotalFeedback != 4 {
		t.Fatalf("total = %d, want 4", out.TotalFeedback)
	}
	if out.SentimentDistribution["POSITIVE"] != 2 || out.SentimentDistribution["NEGATIVE"] != 1 || out.SentimentDistribution["NEUTRAL"] != 1 {
		t.Fatalf("distribution = %+v", out.SentimentDistribution)
	}
	if out.SentimentPercentages["POSITIVE"] != 50.0 {
		t.Fatalf("percentages = %+v", out.SentimentPercentages)
	}
	if out.CategoryBreakdown["product"]["POSITIVE"] != 2 {
		t.Fatalf("category breakdown = %+v", out.CategoryBreakdown)
	}
	if out.CategoryBreakdown["uncategorized"]["NEUTRAL"] != 1 {
		t.Fatalf("uncategorized row = %+v", out.CategoryBreakdown)
	}
	if len(out.TopCustomers) != 3 || out.TopCustomers[0].CustomerID != "A" || out.TopCustomers[0].FeedbackCount != 2 {
		t.Fatalf("top customers = %+v", out.TopCustomers)
	}
	// anonymous default shows up in the ranking
	found := false
	for _, c := range out.TopCustomers {
		if c.CustomerID == "anonymous" {
			found = true
		}
	}
	if !found {
		t.Fatalf("anonymous customer missing from %+v", out.TopCustomers)
	}
	if len(out.RecentFeedback) != 4 {
		t.Fatalf("recent = %d records, want 4", len(out.RecentFeedback))
	}
}
