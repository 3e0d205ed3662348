// Package docproc turns raw uploads into structured Document records and
// aggregates their extracted text into ExtractedInfo.
package docproc

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ppiankov/claimsort/internal/cache"
	"github.com/ppiankov/claimsort/internal/extract"
	"github.com/ppiankov/claimsort/internal/model"
	"github.com/ppiankov/claimsort/internal/worker"
)

// Processor converts uploads into Documents using an extraction provider.
// Extraction failures degrade the document (processed=false, confidence=0)
// rather than failing the claim: intake is best effort.
type Processor struct {
	provider   extract.Provider
	cache      cache.Cache // nil disables memoization
	limiter    *worker.Limiter
	timeout    time.Duration
	maxWorkers int
	cacheTTL   time.Duration
}

// NewProcessor creates a document processor from configuration
func NewProcessor(provider extract.Provider, cfg *model.Config) *Processor {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, 10*time.Minute)
	}

	maxWorkers := cfg.Concurrency.DocumentWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	return &Processor{
		provider:   provider,
		cache:      c,
		limiter:    worker.NewLimiter(cfg.Extraction.RequestsPerSecond, cfg.Extraction.Burst),
		timeout:    cfg.Extraction.Timeout,
		maxWorkers: maxWorkers,
		cacheTTL:   cfg.Cache.TTL,
	}
}

// ProcessDocument processes one upload into a fully-populated Document
func (p *Processor) ProcessDocument(ctx context.Context, upload model.FileUpload) model.Document {
	doc := model.Document{
		ID:         uuid.NewString(),
		Name:       upload.Name,
		Type:       model.DocumentTypeFor(upload.Name),
		Size:       upload.Size,
		UploadedAt: time.Now().UTC(),
	}

	result, err := p.extractText(ctx, upload)
	if err != nil {
		// Degraded intake: keep the document, mark extraction as failed
		doc.Processed = false
		doc.Confidence = 0
		return doc
	}

	doc.Processed = true
	doc.ExtractedText = result.Text
	doc.Confidence = result.Confidence
	return doc
}

// ProcessAll processes the uploads with bounded concurrency. The output
// order always matches upload order regardless of completion order.
func (p *Processor) ProcessAll(ctx context.Context, uploads []model.FileUpload) []model.Document {
	if len(uploads) == 0 {
		return []model.Document{}
	}

	docs := make([]model.Document, len(uploads))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, p.maxWorkers)

	for i, up := range uploads {
		wg.Add(1)
		go func(idx int, u model.FileUpload) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				docs[idx] = model.Document{
					ID:         uuid.NewString(),
					Name:       u.Name,
					Type:       model.DocumentTypeFor(u.Name),
					Size:       u.Size,
					UploadedAt: time.Now().UTC(),
				}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			docs[idx] = p.ProcessDocument(ctx, u)
		}(i, up)
	}

	wg.Wait()
	return docs
}

// extractText runs one rate-limited, timeout-bounded extraction call,
// memoizing results by content hash when the upload carries real bytes.
func (p *Processor) extractText(ctx context.Context, upload model.FileUpload) (*extract.Result, error) {
	// Only content-addressable uploads are cacheable; simulated intake
	// carries no bytes and is non-deterministic by design.
	cacheable := p.cache != nil && len(upload.Content) > 0
	key := ""
	if cacheable {
		key = cache.ContentKey(upload.Content)
		if raw, found := p.cache.Get(key); found {
			var cached extract.Result
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	if err := p.limiter.Wait(ctx, p.provider.Name()); err != nil {
		return nil, err
	}

	callCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	result, err := p.provider.ExtractText(callCtx, upload)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if raw, err := json.Marshal(result); err == nil {
			_ = p.cache.Set(key, raw, p.cacheTTL)
		}
	}

	return result, nil
}
