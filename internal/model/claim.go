package model

import "time"

// Claim is the central aggregate: one submitted insurance request and
// everything the pipeline derived from it.
type Claim struct {
	ID          string    `json:"id"`
	ClaimNumber string    `json:"claim_number"` // Human-readable sequence, e.g. "CLM-1000"
	SubmittedAt time.Time `json:"submitted_at"` // Set once at creation

	Status   Status    `json:"status"`
	Priority Priority  `json:"priority"` // Derived from complexity score at creation
	Type     ClaimType `json:"claim_type"`
	Amount   float64   `json:"claim_amount"`
	Claimant Claimant  `json:"claimant"`

	Documents     []Document    `json:"documents"` // Upload order
	ExtractedInfo ExtractedInfo `json:"extracted_info"`

	ComplexityScore   int             `json:"complexity_score"`             // 0-100
	ComplexityFactors []string        `json:"complexity_factors,omitempty"` // Human-readable contributors
	Routing           RoutingDecision `json:"routing_decision"`

	ProcessingTime time.Duration `json:"processing_time"` // Wall-clock cost of routing evaluation
	Notes          []string      `json:"notes,omitempty"`  // Append-only, timestamped
}

// Claimant identifies the person filing the claim. All fields are required.
type Claimant struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PolicyNumber string `json:"policy_number"`
}

// Submission is the caller-supplied claim data, before any pipeline work
type Submission struct {
	Type     ClaimType `json:"claim_type"`
	Amount   float64   `json:"claim_amount"`
	Claimant Claimant  `json:"claimant"`
}

// ClaimType categorizes the line of business
type ClaimType string

const (
	ClaimTypeMedical  ClaimType = "medical"
	ClaimTypeAuto     ClaimType = "auto"
	ClaimTypeProperty ClaimType = "property"
	ClaimTypeLife     ClaimType = "life"
)

// Valid reports whether t is one of the known claim types
func (t ClaimType) Valid() bool {
	switch t {
	case ClaimTypeMedical, ClaimTypeAuto, ClaimTypeProperty, ClaimTypeLife:
		return true
	}
	return false
}

// Status is the claim lifecycle state. The pipeline only ever moves a claim
// forward: processing, then exactly one of the three routed states. Manual
// transitions are allowed out of manual-review only.
type Status string

const (
	StatusSubmitted    Status = "submitted"
	StatusProcessing   Status = "processing"
	StatusAutoApproved Status = "auto-approved"
	StatusManualReview Status = "manual-review"
	StatusCompleted    Status = "completed"
	StatusRejected     Status = "rejected"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusProcessing, StatusAutoApproved,
		StatusManualReview, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Priority is the coarse urgency bucket derived from the complexity score
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
