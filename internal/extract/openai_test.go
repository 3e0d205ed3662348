package extract

import (
	"context"
	"testing"

	"github.com/ppiankov/claimsort/internal/model"
)

// The hosted provider must advertise reachability so pipeline construction
// can warn before the first submission
var _ AvailabilityChecker = (*OpenAIProvider)(nil)

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(model.ExtractionConfig{}); err == nil {
		t.Error("expected error without API key")
	}
}

func TestNewOpenAIProvider_Defaults(t *testing.T) {
	p, err := NewOpenAIProvider(model.ExtractionConfig{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("Name() = %s", p.Name())
	}
	if p.modelName == "" {
		t.Error("expected a default model name")
	}
}

func TestOpenAIProvider_EmptyContent(t *testing.T) {
	p, err := NewOpenAIProvider(model.ExtractionConfig{APIKey: "sk-test"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.ExtractText(context.Background(), model.FileUpload{Name: "empty.pdf"}); err == nil {
		t.Error("expected error for content-less upload")
	}
}
