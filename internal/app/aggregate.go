package app

import (
	"math"
	"sort"

	"feedback_insights/internal/domain"
)

const (
	topCustomerLimit = 10
	recentSampleSize = 10
)

type CustomerCount struct {
	CustomerID    string `json:"customer_id"`
	FeedbackCount int    `json:"feedback_count"`
}

// Analytics is the aggregated view over one bounded scan of stored records.
type Analytics struct {
	TotalFeedback          int                       `json:"total_feedback"`
	SentimentDistribution  map[string]int            `json:"sentiment_distribution"`
	SentimentPercentages   map[string]float64        `json:"sentiment_percentages"`
	AverageSentimentScores domain.SentimentScores    `json:"average_sentiment_scores"`
	CategoryBreakdown      map[string]map[string]int `json:"category_breakdown"`
	TopCustomers           []CustomerCount           `json:"top_customers"`
	RecentFeedback         []domain.FeedbackRecord   `json:"recent_feedback"`
	Timestamp              string                    `json:"timestamp"`
	TotalRetrieved         int                       `json:"total_retrieved"`
}

// Aggregate computes summary statistics over records in a single pass.
// Deterministic for a given input sequence: same records in, same analytics
// out (the Timestamp field is filled in by the caller, not here).
//
// Records carrying a sentiment label outside the fixed four are counted
// under their own key in the distribution and percentage maps, and under the
// UNKNOWN bucket in per-category rows, which stay fixed-width.
func Aggregate(records []domain.FeedbackRecord) Analytics {
	n := len(records)

	dist := zeroSentimentCounts()
	var sums domain.SentimentScores
	categories := make(map[string]map[string]int)
	customerCounts := make(map[string]int)
	var customerOrder []string

	for _, rec := range records {
		label := rec.Sentiment
		if label == "" {
			label = domain.SentimentNeutral
		}
		dist[string(label)]++

		sums.Positive += rec.SentimentScores.Positive
		sums.Negative += rec.SentimentScores.Negative
		sums.Neutral += rec.SentimentScores.Neutral
		sums.Mixed += rec.SentimentScores.Mixed

		cat := rec.Category()
		row, ok := categories[cat]
		if !ok {
			row = zeroSentimentCounts()
			categories[cat] = row
		}
		if label.Known() {
			row[string(label)]++
		} else {
			row[string(domain.SentimentUnknown)]++
		}

		cid := rec.CustomerID
		if cid == "" {
			cid = domain.AnonymousCustomerID
		}
		if _, seen := customerCounts[cid]; !seen {
			customerOrder = append(customerOrder, cid)
		}
		customerCounts[cid]++
	}

	percentages := make(map[string]float64, len(dist))
	for _, s := range domain.KnownSentiments {
		percentages[string(s)] = 0
	}
	if n > 0 {
		for label, count := range dist {
			percentages[label] = round2(100 * float64(count) / float64(n))
		}
	}

	var avg domain.SentimentScores
	if n > 0 {
		avg = domain.SentimentScores{
			Positive: round4(sums.Positive / float64(n)),
			Negative: round4(sums.Negative / float64(n)),
			Neutral:  round4(sums.Neutral / float64(n)),
			Mixed:    round4(sums.Mixed / float64(n)),
		}
	}

	// Rank customers by volume. The stable sort keeps first-seen order among
	// equal counts, so ties resolve by scan order rather than map order.
	top := make([]CustomerCount, 0, len(customerOrder))
	for _, cid := range customerOrder {
		top = append(top, CustomerCount{CustomerID: cid, FeedbackCount: customerCounts[cid]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].FeedbackCount > top[j].FeedbackCount })
	if len(top) > topCustomerLimit {
		top = top[:topCustomerLimit]
	}

	recent := records
	if len(recent) > recentSampleSize {
		recent = recent[:recentSampleSize]
	}
	if recent == nil {
		recent = []domain.FeedbackRecord{}
	}

	return Analytics{
		TotalFeedback:          n,
		SentimentDistribution:  dist,
		SentimentPercentages:   percentages,
		AverageSentimentScores: avg,
		CategoryBreakdown:      categories,
		TopCustomers:           top,
		RecentFeedback:         recent,
		TotalRetrieved:         n,
	}
}

func zeroSentimentCounts() map[string]int {
	m := make(map[string]int, len(domain.KnownSentiments)+1)
	for _, s := range domain.KnownSentiments {
		m[string(s)] = 0
	}
	return m
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
