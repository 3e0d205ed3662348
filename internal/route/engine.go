// Package route decides the routing outcome for a fully-scored claim.
package route

import (
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/ppiankov/claimsort/internal/model"
)

// Decision confidence per route
const (
	autoApproveConfidence  = 0.95
	rejectConfidence       = 0.90
	manualReviewConfidence = 0.85
)

// Auto-approval bounds
const (
	autoApproveMaxScore  = 30
	autoApproveMaxAmount = 5000
	autoApproveMaxDocs   = 3
	requiredDocCount     = 2
)

// fraudIndicators in the extracted description force rejection
var fraudIndicators = []string{"fraud", "suspicious", "inconsistent", "disputed"}

// reviewerPools assigns manual reviews by claim type; unknown types fall
// back to the auto pool
var reviewerPools = map[model.ClaimType][]string{
	model.ClaimTypeMedical:  {"Dr. Sarah Johnson", "Dr. Michael Chen", "Dr. Lisa Rodriguez"},
	model.ClaimTypeAuto:     {"James Wilson", "Maria Garcia", "Robert Taylor"},
	model.ClaimTypeProperty: {"David Brown", "Jennifer Davis", "Christopher Moore"},
	model.ClaimTypeLife:     {"Patricia Martinez", "Mark Anderson", "Laura Thomas"},
}

// rule is one step of the decision tree. Rules are evaluated in order and the
// first match wins; later rules assume earlier ones did not match, so the
// order is part of the contract.
type rule struct {
	name    string
	matches func(*model.Claim) bool
	decide  func(*model.Claim) model.RoutingDecision
}

// Engine maps a fully-scored claim to a routing outcome with rationale.
// The decision is total: the last rule matches unconditionally.
type Engine struct {
	rules []rule
}

// NewEngine creates a routing engine with the standard rule order:
// auto-approve, reject, manual-review.
func NewEngine() *Engine {
	return &Engine{
		rules: []rule{
			{
				name:    "auto-approve",
				matches: matchesAutoApprove,
				decide: func(c *model.Claim) model.RoutingDecision {
					return model.RoutingDecision{
						Route:      model.RouteAutoApprove,
						Reason:     "Low complexity, meets auto-approval criteria",
						Confidence: autoApproveConfidence,
					}
				},
			},
			{
				name:    "reject",
				matches: matchesReject,
				decide: func(c *model.Claim) model.RoutingDecision {
					return model.RoutingDecision{
						Route:      model.RouteReject,
						Reason:     "Fraud indicators detected or critical information missing",
						Confidence: rejectConfidence,
					}
				},
			},
			{
				name:    "manual-review",
				matches: func(*model.Claim) bool { return true },
				decide: func(c *model.Claim) model.RoutingDecision {
					return model.RoutingDecision{
						Route:               model.RouteManualReview,
						Reason:              manualReviewReason(c),
						Confidence:          manualReviewConfidence,
						ReviewerAssigned:    assignReviewer(c),
						EstimatedReviewTime: estimateReviewTime(c),
					}
				},
			},
		},
	}
}

// Decide evaluates the rules in order and returns the first match.
// Called exactly once per claim, at creation.
func (e *Engine) Decide(claim *model.Claim) model.RoutingDecision {
	for _, r := range e.rules {
		if r.matches(claim) {
			return r.decide(claim)
		}
	}
	// Unreachable: the manual-review rule always matches
	return model.RoutingDecision{Route: model.RouteManualReview, Confidence: manualReviewConfidence}
}

func matchesAutoApprove(c *model.Claim) bool {
	return c.ComplexityScore < autoApproveMaxScore &&
		c.Amount < autoApproveMaxAmount &&
		len(c.Documents) <= autoApproveMaxDocs &&
		hasRequiredDocuments(c)
}

// hasRequiredDocuments is a proxy check on document count. A real system
// would validate per-type document lists.
func hasRequiredDocuments(c *model.Claim) bool {
	return len(c.Documents) >= requiredDocCount
}

func matchesReject(c *model.Claim) bool {
	return hasFraudIndicators(c) || hasMissingCriticalInfo(c)
}

func hasFraudIndicators(c *model.Claim) bool {
	description := strings.ToLower(c.ExtractedInfo.Description)
	for _, indicator := range fraudIndicators {
		if strings.Contains(description, indicator) {
			return true
		}
	}
	return false
}

func hasMissingCriticalInfo(c *model.Claim) bool {
	return c.ExtractedInfo.FieldCount() < 2
}

// assignReviewer picks deterministically from the claim type's pool so
// repeated evaluation of the same claim is reproducible
func assignReviewer(c *model.Claim) string {
	pool, ok := reviewerPools[c.Type]
	if !ok {
		pool = reviewerPools[model.ClaimTypeAuto]
	}
	return pool[reviewerIndex(c)%len(pool)]
}

// reviewerIndex derives a stable index from the claim number sequence,
// falling back to a hash of the claim ID
func reviewerIndex(c *model.Claim) int {
	if n, err := strconv.Atoi(strings.TrimPrefix(c.ClaimNumber, "CLM-")); err == nil {
		return n
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(c.ID))
	return int(h.Sum32())
}

// estimateReviewTime returns the estimated review effort in hours:
// 2h base, up to 6h for complexity, up to 3h for document volume
func estimateReviewTime(c *model.Claim) int {
	base := 2.0
	complexity := float64(c.ComplexityScore) / 100 * 6
	docs := math.Min(float64(len(c.Documents))*0.5, 3)
	return int(math.Round(base + complexity + docs))
}

// manualReviewReason joins every applicable review trigger
func manualReviewReason(c *model.Claim) string {
	var reasons []string

	if c.Amount > 10000 {
		reasons = append(reasons, "High claim amount")
	}
	if c.ComplexityScore > 50 {
		reasons = append(reasons, "High complexity score")
	}
	if len(c.Documents) > 4 {
		reasons = append(reasons, "Multiple documents require review")
	}
	if c.Type == model.ClaimTypeLife || c.Type == model.ClaimTypeMedical {
		reasons = append(reasons, "Requires specialized review")
	}

	if len(reasons) == 0 {
		return "Standard manual review required"
	}
	return strings.Join(reasons, ", ")
}
