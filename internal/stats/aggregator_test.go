package stats

import (
	"testing"
	"time"

	"github.com/ppiankov/claimsort/internal/model"
	"github.com/ppiankov/claimsort/internal/store"
)

func TestAggregator_EmptyStore(t *testing.T) {
	agg := NewAggregator(store.NewStore())

	got := agg.ProcessingStats()
	if got != (model.ProcessingStats{}) {
		t.Errorf("expected zero stats for empty store, got %+v", got)
	}
}

func TestAggregator_CountsAndAverage(t *testing.T) {
	s := store.NewStore()

	add := func(id string, status model.Status, priority model.Priority, elapsed time.Duration) {
		s.Add(model.Claim{
			ID:             id,
			ClaimNumber:    s.NextClaimNumber(),
			SubmittedAt:    time.Now(),
			Status:         status,
			Priority:       priority,
			ProcessingTime: elapsed,
		})
	}

	add("a", model.StatusAutoApproved, model.PriorityLow, 10*time.Millisecond)
	add("b", model.StatusManualReview, model.PriorityHigh, 20*time.Millisecond)
	add("c", model.StatusManualReview, model.PriorityUrgent, 30*time.Millisecond)
	add("d", model.StatusRejected, model.PriorityMedium, 40*time.Millisecond)
	add("e", model.StatusCompleted, model.PriorityLow, 100*time.Millisecond)

	got := NewAggregator(s).ProcessingStats()

	if got.TotalClaims != 5 {
		t.Errorf("TotalClaims = %d, want 5", got.TotalClaims)
	}
	if got.AutoApproved != 1 || got.ManualReview != 2 || got.Rejected != 1 || got.Completed != 1 {
		t.Errorf("status counts = %d/%d/%d/%d, want 1/2/1/1",
			got.AutoApproved, got.ManualReview, got.Rejected, got.Completed)
	}
	if got.ComplexityDist.Low != 2 || got.ComplexityDist.Medium != 1 ||
		got.ComplexityDist.High != 1 || got.ComplexityDist.Urgent != 1 {
		t.Errorf("complexity distribution = %+v", got.ComplexityDist)
	}
	if got.AvgProcessingTime != 40*time.Millisecond {
		t.Errorf("AvgProcessingTime = %s, want 40ms", got.AvgProcessingTime)
	}
}

func TestAggregator_TracksStatusUpdates(t *testing.T) {
	s := store.NewStore()
	s.Add(model.Claim{
		ID:          "a",
		ClaimNumber: s.NextClaimNumber(),
		SubmittedAt: time.Now(),
		Status:      model.StatusManualReview,
		Priority:    model.PriorityMedium,
	})
	agg := NewAggregator(s)

	before := agg.ProcessingStats()
	if before.ManualReview != 1 || before.Completed != 0 {
		t.Fatalf("before transition: %+v", before)
	}

	if !s.UpdateStatus("a", model.StatusCompleted, "") {
		t.Fatal("expected transition to succeed")
	}

	after := agg.ProcessingStats()
	if after.ManualReview != 0 || after.Completed != 1 {
		t.Errorf("after transition: %+v", after)
	}
}
