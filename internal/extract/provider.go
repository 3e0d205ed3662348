// Package extract defines the information-extraction provider seam. The
// default provider simulates OCR; a real OCR/ML backend plugs in here without
// touching scoring or routing.
package extract

import (
	"context"

	"github.com/ppiankov/claimsort/internal/model"
)

// Provider defines the interface for text-extraction backends
type Provider interface {
	// Name returns the provider name
	Name() string

	// ExtractText extracts text from an uploaded file and reports the
	// extraction confidence in [0,1]
	ExtractText(ctx context.Context, upload model.FileUpload) (*Result, error)
}

// AvailabilityChecker is implemented by providers that can verify their
// backend is reachable before any document is submitted
type AvailabilityChecker interface {
	IsAvailable(ctx context.Context) bool
}

// Result is the output of one extraction call
type Result struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}
