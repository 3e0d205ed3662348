// Package stats derives dashboard-level metrics from the current claim set.
// Pure read: the aggregator never mutates the store.
package stats

import (
	"time"

	"github.com/ppiankov/claimsort/internal/model"
	"github.com/ppiankov/claimsort/internal/store"
)

// Aggregator computes processing statistics over the store
type Aggregator struct {
	store *store.Store
}

// NewAggregator creates a new stats aggregator
func NewAggregator(s *store.Store) *Aggregator {
	return &Aggregator{store: s}
}

// ProcessingStats aggregates the current claim set. An empty store yields
// all zeros, including average processing time.
func (a *Aggregator) ProcessingStats() model.ProcessingStats {
	claims := a.store.Snapshot()

	stats := model.ProcessingStats{TotalClaims: len(claims)}
	if len(claims) == 0 {
		return stats
	}

	var totalProcessing time.Duration
	for _, c := range claims {
		totalProcessing += c.ProcessingTime

		switch c.Status {
		case model.StatusAutoApproved:
			stats.AutoApproved++
		case model.StatusManualReview:
			stats.ManualReview++
		case model.StatusRejected:
			stats.Rejected++
		case model.StatusCompleted:
			stats.Completed++
		}

		switch c.Priority {
		case model.PriorityLow:
			stats.ComplexityDist.Low++
		case model.PriorityMedium:
			stats.ComplexityDist.Medium++
		case model.PriorityHigh:
			stats.ComplexityDist.High++
		case model.PriorityUrgent:
			stats.ComplexityDist.Urgent++
		}
	}

	stats.AvgProcessingTime = totalProcessing / time.Duration(len(claims))
	return stats
}
