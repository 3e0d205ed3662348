package docproc

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ppiankov/claimsort/internal/extract"
	"github.com/ppiankov/claimsort/internal/model"
)

// fakeProvider returns canned results and counts calls
type fakeProvider struct {
	mu      sync.Mutex
	calls   int32
	fail    map[string]bool // upload names that should fail
	delay   time.Duration
	seen    []string
	started chan struct{} // optional, signals each call start
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) ExtractText(ctx context.Context, upload model.FileUpload) (*extract.Result, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	f.seen = append(f.seen, upload.Name)
	f.mu.Unlock()
	if f.fail[upload.Name] {
		return nil, errors.New("extraction backend unavailable")
	}
	return &extract.Result{Text: "text from " + upload.Name, Confidence: 0.92}, nil
}

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Extraction.RequestsPerSecond = 1000
	cfg.Extraction.Burst = 1000
	return cfg
}

func TestProcessor_ProcessDocument(t *testing.T) {
	p := NewProcessor(&fakeProvider{}, testConfig())

	doc := p.ProcessDocument(context.Background(), model.FileUpload{Name: "report.pdf", Size: 2048})

	if doc.ID == "" {
		t.Error("expected generated document ID")
	}
	if doc.Type != model.DocumentTypePDF {
		t.Errorf("Type = %s, want pdf", doc.Type)
	}
	if !doc.Processed {
		t.Error("expected processed document")
	}
	if doc.ExtractedText != "text from report.pdf" {
		t.Errorf("ExtractedText = %q", doc.ExtractedText)
	}
	if doc.Confidence != 0.92 {
		t.Errorf("Confidence = %.2f", doc.Confidence)
	}
}

func TestProcessor_ProcessDocument_DegradedOnFailure(t *testing.T) {
	provider := &fakeProvider{fail: map[string]bool{"broken.pdf": true}}
	p := NewProcessor(provider, testConfig())

	doc := p.ProcessDocument(context.Background(), model.FileUpload{Name: "broken.pdf"})

	if doc.Processed {
		t.Error("expected unprocessed document after extraction failure")
	}
	if doc.Confidence != 0 {
		t.Errorf("Confidence = %.2f, want 0", doc.Confidence)
	}
	if doc.ExtractedText != "" {
		t.Errorf("ExtractedText = %q, want empty", doc.ExtractedText)
	}
	if doc.Name != "broken.pdf" || doc.ID == "" {
		t.Error("degraded document lost its identity")
	}
}

func TestProcessor_ProcessAll_PreservesOrder(t *testing.T) {
	p := NewProcessor(&fakeProvider{delay: 5 * time.Millisecond}, testConfig())

	uploads := []model.FileUpload{
		{Name: "a.pdf"},
		{Name: "b.jpg"},
		{Name: "c.txt"},
		{Name: "d.pdf"},
		{Name: "e.png"},
	}

	docs := p.ProcessAll(context.Background(), uploads)

	if len(docs) != len(uploads) {
		t.Fatalf("expected %d documents, got %d", len(uploads), len(docs))
	}
	for i, up := range uploads {
		if docs[i].Name != up.Name {
			t.Errorf("position %d: got %s, want %s", i, docs[i].Name, up.Name)
		}
	}
}

func TestProcessor_ProcessAll_PartialFailure(t *testing.T) {
	provider := &fakeProvider{fail: map[string]bool{"bad.pdf": true}}
	p := NewProcessor(provider, testConfig())

	docs := p.ProcessAll(context.Background(), []model.FileUpload{
		{Name: "good.pdf"},
		{Name: "bad.pdf"},
		{Name: "also-good.txt"},
	})

	if !docs[0].Processed || !docs[2].Processed {
		t.Error("healthy documents should process")
	}
	if docs[1].Processed {
		t.Error("failed document should be degraded, not dropped")
	}
	if len(docs) != 3 {
		t.Errorf("expected all 3 documents retained, got %d", len(docs))
	}
}

func TestProcessor_ProcessAll_Empty(t *testing.T) {
	p := NewProcessor(&fakeProvider{}, testConfig())

	docs := p.ProcessAll(context.Background(), nil)
	if docs == nil || len(docs) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", docs)
	}
}

func TestProcessor_ProcessAll_BoundedConcurrency(t *testing.T) {
	cfg := testConfig()
	cfg.Concurrency.DocumentWorkers = 2

	started := make(chan struct{}, 10)
	provider := &fakeProvider{delay: 20 * time.Millisecond, started: started}
	p := NewProcessor(provider, cfg)

	done := make(chan struct{})
	go func() {
		p.ProcessAll(context.Background(), []model.FileUpload{
			{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"},
		})
		close(done)
	}()

	// With 2 workers and a 20ms call, no more than 2 calls start in the
	// first few milliseconds
	time.Sleep(10 * time.Millisecond)
	if inFlight := len(started); inFlight > 2 {
		t.Errorf("expected at most 2 concurrent extractions, saw %d", inFlight)
	}
	<-done
}

func TestProcessor_ProcessAll_CancelledContext(t *testing.T) {
	p := NewProcessor(&fakeProvider{}, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	docs := p.ProcessAll(ctx, []model.FileUpload{{Name: "a.pdf"}, {Name: "b.pdf"}})

	if len(docs) != 2 {
		t.Fatalf("expected placeholder documents, got %d", len(docs))
	}
	for _, doc := range docs {
		if doc.Processed {
			t.Errorf("document %s processed despite cancelled context", doc.Name)
		}
	}
}

func TestProcessor_CachesByContent(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.TTL = time.Minute

	provider := &fakeProvider{}
	p := NewProcessor(provider, cfg)

	upload := model.FileUpload{Name: "statement.txt", Content: []byte("same bytes")}

	first := p.ProcessDocument(context.Background(), upload)
	second := p.ProcessDocument(context.Background(), upload)

	if got := atomic.LoadInt32(&provider.calls); got != 1 {
		t.Errorf("expected 1 provider call, got %d", got)
	}
	if first.ExtractedText != second.ExtractedText || first.Confidence != second.Confidence {
		t.Error("cached result differs from original")
	}
}

func TestProcessor_NoCacheWithoutContent(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true

	provider := &fakeProvider{}
	p := NewProcessor(provider, cfg)

	upload := model.FileUpload{Name: "simulated.pdf"}
	p.ProcessDocument(context.Background(), upload)
	p.ProcessDocument(context.Background(), upload)

	if got := atomic.LoadInt32(&provider.calls); got != 2 {
		t.Errorf("content-less uploads must not be cached, got %d calls", got)
	}
}
