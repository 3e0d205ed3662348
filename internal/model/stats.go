package model

import "time"

// ProcessingStats is the dashboard-level aggregate over the current claim set
type ProcessingStats struct {
	TotalClaims       int                    `json:"total_claims"`
	AutoApproved      int                    `json:"auto_approved"`
	ManualReview      int                    `json:"manual_review"`
	Rejected          int                    `json:"rejected"`
	Completed         int                    `json:"completed"`
	AvgProcessingTime time.Duration          `json:"avg_processing_time"`
	ComplexityDist    ComplexityDistribution `json:"complexity_distribution"`
}

// ComplexityDistribution counts claims per priority bucket
type ComplexityDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
	Urgent int `json:"urgent"`
}
