// Package score computes the claim complexity score and priority tier.
// Both functions are pure: identical inputs always produce identical output.
package score

import (
	"strings"

	"github.com/ppiankov/claimsort/internal/model"
)

// Additive score components, clamped to [0,100] overall
const (
	amountOver100K = 30
	amountOver50K  = 20
	amountOver10K  = 10
	amountBase     = 5

	docCountPerDoc   = 3
	docCountCap      = 15
	lowConfidencePen = 15
	sparseInfoPen    = 10
	surgeryPen       = 20
	fraudKeywordPen  = 25

	maxScore         = 100
	lowConfidenceBar = 0.8
	sparseInfoFields = 3
)

var typeScores = map[model.ClaimType]int{
	model.ClaimTypeMedical:  25,
	model.ClaimTypeLife:     30,
	model.ClaimTypeProperty: 20,
	model.ClaimTypeAuto:     15,
}

// Analyzer calculates the complexity score and priority for a claim
type Analyzer struct{}

// NewAnalyzer creates a new complexity analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Score computes the 0-100 complexity score as a deterministic weighted sum.
// Monotonic non-decreasing in amount and document count.
func (a *Analyzer) Score(amount float64, claimType model.ClaimType, documents []model.Document, info model.ExtractedInfo) int {
	score := 0

	// Amount-based complexity
	switch {
	case amount > 100000:
		score += amountOver100K
	case amount > 50000:
		score += amountOver50K
	case amount > 10000:
		score += amountOver10K
	default:
		score += amountBase
	}

	// Type-based complexity
	if ts, ok := typeScores[claimType]; ok {
		score += ts
	} else {
		score += typeScores[model.ClaimTypeAuto]
	}

	// Document-based complexity
	docScore := len(documents) * docCountPerDoc
	if docScore > docCountCap {
		docScore = docCountCap
	}
	score += docScore

	// Low extraction confidence
	if avgConfidence(documents) < lowConfidenceBar {
		score += lowConfidencePen
	}

	// Missing information penalty
	if info.FieldCount() < sparseInfoFields {
		score += sparseInfoPen
	}

	// Special cases
	if info.MedicalInfo != nil && strings.Contains(strings.ToLower(info.MedicalInfo.Diagnosis), "surgery") {
		score += surgeryPen
	}
	desc := strings.ToLower(info.Description)
	if strings.Contains(desc, "fraud") || strings.Contains(desc, "disputed") {
		score += fraudKeywordPen
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}

// PriorityFor maps a complexity score to its priority tier.
// The partition is total and non-overlapping at boundaries 40/60/80.
func (a *Analyzer) PriorityFor(complexityScore int) model.Priority {
	switch {
	case complexityScore >= 80:
		return model.PriorityUrgent
	case complexityScore >= 60:
		return model.PriorityHigh
	case complexityScore >= 40:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// Factors returns the human-readable factors contributing to complexity
func (a *Analyzer) Factors(amount float64, claimType model.ClaimType, documents []model.Document, info model.ExtractedInfo) []string {
	var factors []string

	if amount > 100000 {
		factors = append(factors, "High claim amount (>$100K)")
	}
	if claimType == model.ClaimTypeLife || claimType == model.ClaimTypeMedical {
		factors = append(factors, "High-risk claim type")
	}
	if len(documents) > 5 {
		factors = append(factors, "Multiple documents submitted")
	}
	if avgConfidence(documents) < lowConfidenceBar {
		factors = append(factors, "Low document extraction confidence")
	}
	if info.FieldCount() < sparseInfoFields {
		factors = append(factors, "Insufficient extracted information")
	}
	if info.MedicalInfo != nil && strings.Contains(strings.ToLower(info.MedicalInfo.Diagnosis), "surgery") {
		factors = append(factors, "Surgical procedure involved")
	}
	if strings.Contains(strings.ToLower(info.Description), "fraud") {
		factors = append(factors, "Potential fraud indicators")
	}

	return factors
}

// avgConfidence returns the mean document confidence; failed extractions
// count as zero
func avgConfidence(documents []model.Document) float64 {
	if len(documents) == 0 {
		return 0
	}
	sum := 0.0
	for _, doc := range documents {
		sum += doc.Confidence
	}
	return sum / float64(len(documents))
}
