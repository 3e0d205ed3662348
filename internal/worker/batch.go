package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/claimsort/internal/model"
)

// Submitter defines the interface for submitting one claim
type Submitter interface {
	SubmitClaim(ctx context.Context, sub model.Submission, files []model.FileUpload) (*model.Claim, error)
}

// Manifest is one claim submission on disk: the claim data plus the paths of
// its attachment files, relative to the manifest location
type Manifest struct {
	model.Submission
	Files []string `json:"files"`
}

// SubmitJob submits one claim manifest
type SubmitJob struct {
	Path      string
	Submitter Submitter
}

// Execute loads the manifest and runs the submission
func (j *SubmitJob) Execute(ctx context.Context) Result {
	manifest, uploads, err := LoadManifest(j.Path)
	if err != nil {
		return &SubmitResult{Path: j.Path, Error: err}
	}

	claim, err := j.Submitter.SubmitClaim(ctx, manifest.Submission, uploads)
	return &SubmitResult{Path: j.Path, Claim: claim, Error: err}
}

// SubmitResult is the outcome of one batch submission
type SubmitResult struct {
	Path  string
	Claim *model.Claim
	Error error
}

// GetError returns the error from the submission
func (r *SubmitResult) GetError() error {
	return r.Error
}

// BatchSubmitter submits many claim manifests concurrently
type BatchSubmitter struct {
	submitter   Submitter
	concurrency int
}

// NewBatchSubmitter creates a new batch submitter
func NewBatchSubmitter(submitter Submitter, concurrency int) *BatchSubmitter {
	return &BatchSubmitter{
		submitter:   submitter,
		concurrency: concurrency,
	}
}

// ProcessManifests submits the given manifest paths concurrently
func (b *BatchSubmitter) ProcessManifests(ctx context.Context, paths []string) []*SubmitResult {
	if len(paths) == 0 {
		return []*SubmitResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&SubmitJob{Path: path, Submitter: b.submitter})
	}

	results := pool.Wait()

	submitResults := make([]*SubmitResult, len(results))
	for i, result := range results {
		submitResults[i] = result.(*SubmitResult)
	}
	return submitResults
}

// ProcessFile reads manifest paths from a list file (one per line, # for
// comments) and submits them concurrently
func (b *BatchSubmitter) ProcessFile(ctx context.Context, listPath string) ([]*SubmitResult, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open list file: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list file: %w", err)
	}

	return b.ProcessManifests(ctx, paths), nil
}

// LoadManifest parses a manifest file and loads its attachments. A listed
// attachment that cannot be read becomes a content-less upload; the pipeline
// degrades it instead of failing the claim.
func LoadManifest(path string) (*Manifest, []model.FileUpload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, nil, fmt.Errorf("parse manifest: %w", err)
	}

	dir := filepath.Dir(path)
	uploads := make([]model.FileUpload, 0, len(manifest.Files))
	for _, name := range manifest.Files {
		fp := name
		if !filepath.IsAbs(fp) {
			fp = filepath.Join(dir, name)
		}

		upload := model.FileUpload{Name: filepath.Base(name)}
		if content, err := os.ReadFile(fp); err == nil {
			upload.Content = content
			upload.Size = int64(len(content))
		}
		uploads = append(uploads, upload)
	}

	return &manifest, uploads, nil
}
