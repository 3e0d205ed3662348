package extract

import (
	"fmt"
	"strings"

	"github.com/ppiankov/claimsort/internal/model"
)

// NewProvider creates an extraction provider from configuration.
// An empty provider name selects the simulated default.
func NewProvider(cfg model.ExtractionConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "simulated":
		return NewSimulatedProvider(), nil

	case "plaintext":
		return NewPlaintextProvider(), nil

	case "openai":
		return NewOpenAIProvider(cfg)

	default:
		return nil, fmt.Errorf("unknown extraction provider: %s (supported: simulated, plaintext, openai)", cfg.Provider)
	}
}
