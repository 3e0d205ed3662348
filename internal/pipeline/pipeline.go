// Package pipeline orchestrates the claim evaluation pipeline: document
// intake, information extraction, complexity scoring, routing, storage.
package pipeline

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ppiankov/claimsort/internal/docproc"
	"github.com/ppiankov/claimsort/internal/extract"
	"github.com/ppiankov/claimsort/internal/logging"
	"github.com/ppiankov/claimsort/internal/model"
	"github.com/ppiankov/claimsort/internal/route"
	"github.com/ppiankov/claimsort/internal/score"
	"github.com/ppiankov/claimsort/internal/stats"
	"github.com/ppiankov/claimsort/internal/store"
)

// Pipeline wires the evaluation stages together. One pipeline serves all
// submissions; only the store append is serialized.
type Pipeline struct {
	processor *docproc.Processor
	analyzer  *score.Analyzer
	engine    *route.Engine
	store     *store.Store
	stats     *stats.Aggregator
	log       logging.Logger
}

// New creates a pipeline with the extraction provider named in cfg. A hosted
// provider that reports itself unreachable is kept (intake degrades per
// document) but the condition is logged up front.
func New(ctx context.Context, cfg *model.Config, log logging.Logger) (*Pipeline, error) {
	provider, err := extract.NewProvider(cfg.Extraction)
	if err != nil {
		return nil, fmt.Errorf("create extraction provider: %w", err)
	}
	if checker, ok := provider.(extract.AvailabilityChecker); ok && !checker.IsAvailable(ctx) {
		log.Warn("extraction backend unreachable, documents will degrade", "provider", provider.Name())
	}
	return NewWithProvider(provider, cfg, log), nil
}

// NewWithProvider creates a pipeline around an explicit provider.
// Tests use this to substitute deterministic fixtures.
func NewWithProvider(provider extract.Provider, cfg *model.Config, log logging.Logger) *Pipeline {
	s := store.NewStore()
	return &Pipeline{
		processor: docproc.NewProcessor(provider, cfg),
		analyzer:  score.NewAnalyzer(),
		engine:    route.NewEngine(),
		store:     s,
		stats:     stats.NewAggregator(s),
		log:       log,
	}
}

// SubmitClaim runs the full evaluation pipeline synchronously: validation,
// document processing, information extraction, scoring, routing, storage.
// Once it begins, the submission runs to completion.
func (p *Pipeline) SubmitClaim(ctx context.Context, sub model.Submission, files []model.FileUpload) (*model.Claim, error) {
	if err := validate(sub, files); err != nil {
		return nil, err
	}

	claimNumber := p.store.NextClaimNumber()

	// 1. Process documents (bounded concurrency, upload order preserved)
	documents := p.processor.ProcessAll(ctx, files)

	// 2. Aggregate extracted information
	info := docproc.ExtractInformation(documents)

	// 3. Calculate complexity
	complexity := p.analyzer.Score(sub.Amount, sub.Type, documents, info)

	claim := model.Claim{
		ID:                uuid.NewString(),
		ClaimNumber:       claimNumber,
		SubmittedAt:       time.Now().UTC(),
		Status:            model.StatusProcessing,
		Priority:          p.analyzer.PriorityFor(complexity),
		Type:              sub.Type,
		Amount:            sub.Amount,
		Claimant:          sub.Claimant,
		Documents:         documents,
		ExtractedInfo:     info,
		ComplexityScore:   complexity,
		ComplexityFactors: p.analyzer.Factors(sub.Amount, sub.Type, documents, info),
	}

	// 4. Route. Processing time measures the routing evaluation only.
	start := time.Now()
	claim.Routing = p.engine.Decide(&claim)
	claim.ProcessingTime = time.Since(start)

	// 5. Status follows the routing outcome
	claim.Status = claim.Routing.Route.StatusFor()

	p.store.Add(claim)

	p.log.Info("claim processed",
		"claim_number", claim.ClaimNumber,
		"type", claim.Type,
		"score", claim.ComplexityScore,
		"priority", claim.Priority,
		"route", claim.Routing.Route,
	)

	return &claim, nil
}

// GetClaim returns the claim with the given ID
func (p *Pipeline) GetClaim(id string) (*model.Claim, error) {
	claim, ok := p.store.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &claim, nil
}

// AllClaims returns every claim, newest first
func (p *Pipeline) AllClaims() []model.Claim {
	return p.store.All()
}

// ClaimsByStatus returns claims in the given status
func (p *Pipeline) ClaimsByStatus(status model.Status) []model.Claim {
	return p.store.ByStatus(status)
}

// ClaimsByPriority returns claims in the given priority bucket
func (p *Pipeline) ClaimsByPriority(priority model.Priority) []model.Claim {
	return p.store.ByPriority(priority)
}

// UpdateClaimStatus applies an operator transition. Returns false, without
// raising, when the ID is unknown or the transition is illegal.
func (p *Pipeline) UpdateClaimStatus(id string, status model.Status, note string) bool {
	ok := p.store.UpdateStatus(id, status, note)
	if ok {
		p.log.Info("claim status updated", "claim_id", id, "status", status)
	}
	return ok
}

// ProcessingStats returns the aggregate metrics for the current claim set
func (p *Pipeline) ProcessingStats() model.ProcessingStats {
	return p.stats.ProcessingStats()
}

// validate rejects malformed submissions before any pipeline work happens
func validate(sub model.Submission, files []model.FileUpload) error {
	if !sub.Type.Valid() {
		return &ValidationError{Field: "claim_type", Reason: "unknown claim type"}
	}
	if sub.Amount < 0 || math.IsNaN(sub.Amount) || math.IsInf(sub.Amount, 0) {
		return &ValidationError{Field: "claim_amount", Reason: "must be a non-negative number"}
	}
	if strings.TrimSpace(sub.Claimant.Name) == "" {
		return &ValidationError{Field: "claimant.name", Reason: "required"}
	}
	if strings.TrimSpace(sub.Claimant.Email) == "" {
		return &ValidationError{Field: "claimant.email", Reason: "required"}
	}
	if strings.TrimSpace(sub.Claimant.Phone) == "" {
		return &ValidationError{Field: "claimant.phone", Reason: "required"}
	}
	if strings.TrimSpace(sub.Claimant.PolicyNumber) == "" {
		return &ValidationError{Field: "claimant.policy_number", Reason: "required"}
	}
	if len(files) == 0 {
		return &ValidationError{Field: "files", Reason: "at least one document is required"}
	}
	return nil
}
