package model

// Route is the routing outcome for a claim
type Route string

const (
	RouteAutoApprove  Route = "auto-approve"
	RouteManualReview Route = "manual-review"
	RouteReject       Route = "reject"
)

// StatusFor maps a routing outcome to the claim status it triggers.
// This is the only status transition the pipeline performs automatically.
func (r Route) StatusFor() Status {
	switch r {
	case RouteAutoApprove:
		return StatusAutoApproved
	case RouteReject:
		return StatusRejected
	default:
		return StatusManualReview
	}
}

// RoutingDecision is the result of routing evaluation, made exactly once per
// claim. Reason may concatenate multiple trigger reasons.
type RoutingDecision struct {
	Route               Route   `json:"route"`
	Reason              string  `json:"reason"`
	Confidence          float64 `json:"confidence"` // [0,1]
	ReviewerAssigned    string  `json:"reviewer_assigned,omitempty"`
	EstimatedReviewTime int     `json:"estimated_review_time"` // Hours, 0 for terminal routes
}
