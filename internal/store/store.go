// Package store keeps the claim set in process memory for the process
// lifetime. All mutation goes through the store API; readers get copies.
package store

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ppiankov/claimsort/internal/model"
)

// firstClaimNumber seeds the human-readable claim sequence
const firstClaimNumber = 1000

// Store owns the collection of claims. Appends are serialized and claim
// number allocation is guarded by the same lock, so numbers are strictly
// monotonic across concurrent submissions.
type Store struct {
	mu         sync.RWMutex
	claims     []model.Claim
	index      map[string]int // claim ID -> position in claims
	nextNumber int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		index:      make(map[string]int),
		nextNumber: firstClaimNumber,
	}
}

// NextClaimNumber allocates the next claim number in the CLM-<n> sequence
func (s *Store) NextClaimNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.nextNumber
	s.nextNumber++
	return fmt.Sprintf("CLM-%d", n)
}

// Add appends a claim to the store
func (s *Store) Add(claim model.Claim) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index[claim.ID] = len(s.claims)
	s.claims = append(s.claims, claim)
}

// Get returns the claim with the given ID
func (s *Store) Get(id string) (model.Claim, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return model.Claim{}, false
	}
	return cloneClaim(s.claims[pos]), true
}

// All returns every claim sorted by submission time, newest first.
// Equal timestamps break by claim number descending so the order is total.
func (s *Store) All() []model.Claim {
	s.mu.RLock()
	out := make([]model.Claim, 0, len(s.claims))
	for _, c := range s.claims {
		out = append(out, cloneClaim(c))
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.After(out[j].SubmittedAt)
		}
		return claimSequence(out[i].ClaimNumber) > claimSequence(out[j].ClaimNumber)
	})
	return out
}

// ByStatus returns claims with the given status, in insertion order
func (s *Store) ByStatus(status model.Status) []model.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Claim{}
	for _, c := range s.claims {
		if c.Status == status {
			out = append(out, cloneClaim(c))
		}
	}
	return out
}

// ByPriority returns claims with the given priority, in insertion order
func (s *Store) ByPriority(priority model.Priority) []model.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Claim{}
	for _, c := range s.claims {
		if c.Priority == priority {
			out = append(out, cloneClaim(c))
		}
	}
	return out
}

// Snapshot returns a copy of every claim in insertion order, for aggregation
func (s *Store) Snapshot() []model.Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Claim, 0, len(s.claims))
	for _, c := range s.claims {
		out = append(out, cloneClaim(c))
	}
	return out
}

// UpdateStatus applies an operator transition, optionally appending a note.
// Returns false, leaving the store unchanged, when the ID is unknown or the
// transition is not legal. Only claims in manual-review may move, and only
// to auto-approved, rejected, or completed.
func (s *Store) UpdateStatus(id string, status model.Status, note string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return false
	}

	claim := &s.claims[pos]
	if !legalTransition(claim.Status, status) {
		return false
	}

	claim.Status = status
	if note != "" {
		claim.Notes = append(claim.Notes, time.Now().UTC().Format(time.RFC3339)+": "+note)
	}
	return true
}

// legalTransition reports whether an operator may move a claim from one
// status to another
func legalTransition(from, to model.Status) bool {
	if from != model.StatusManualReview {
		return false
	}
	switch to {
	case model.StatusAutoApproved, model.StatusRejected, model.StatusCompleted:
		return true
	}
	return false
}

// cloneClaim copies a claim deeply enough that callers cannot mutate
// stored state through the returned value
func cloneClaim(c model.Claim) model.Claim {
	out := c
	out.Documents = append([]model.Document(nil), c.Documents...)
	out.Notes = append([]string(nil), c.Notes...)
	out.ComplexityFactors = append([]string(nil), c.ComplexityFactors...)
	if c.ExtractedInfo.MedicalInfo != nil {
		mi := *c.ExtractedInfo.MedicalInfo
		out.ExtractedInfo.MedicalInfo = &mi
	}
	if c.ExtractedInfo.VehicleInfo != nil {
		vi := *c.ExtractedInfo.VehicleInfo
		out.ExtractedInfo.VehicleInfo = &vi
	}
	out.ExtractedInfo.Damages = append([]string(nil), c.ExtractedInfo.Damages...)
	out.ExtractedInfo.Witnesses = append([]string(nil), c.ExtractedInfo.Witnesses...)
	return out
}

// claimSequence parses the numeric part of a CLM-<n> claim number
func claimSequence(claimNumber string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(claimNumber, "CLM-"))
	if err != nil {
		return 0
	}
	return n
}
