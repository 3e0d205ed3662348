package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/ppiankov/claimsort/internal/pipeline"
	"github.com/ppiankov/claimsort/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Submit multiple claims from a list file in parallel",
	Long: `Batch processes multiple claim manifests concurrently:
- Read manifest paths from the input file (one per line, # for comments)
- Submit claims in parallel with a configurable worker count
- Document processing within each claim is itself concurrent
- Print the aggregate statistics when done

Example:
  claimsort batch claims.txt
  claimsort batch claims.txt --concurrency 10
  claimsort batch claims.txt --provider plaintext`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringVar(&submitProvider, "provider", "", "extraction provider (simulated, plaintext, openai)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := loadConfig()
	applyExtractionFlags(cfg)
	cfg.Concurrency.BatchWorkers = concurrency

	log := newLogger(cfg)
	p, err := pipeline.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Claimsort Batch Processing\n")
	fmt.Fprintf(os.Stderr, "  Input file:  %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Provider:    %s\n", cfg.Extraction.Provider)
	fmt.Fprintf(os.Stderr, "\n")

	submitter := worker.NewBatchSubmitter(p, cfg.Concurrency.BatchWorkers)
	results, err := submitter.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Path, r.Error)
			continue
		}
		fmt.Printf("✓ %s: %s -> %s (score %d, %s)\n",
			r.Path, r.Claim.ClaimNumber, r.Claim.Routing.Route, r.Claim.ComplexityScore, r.Claim.Priority)
	}

	stats := p.ProcessingStats()
	fmt.Printf("\n")
	fmt.Printf("  Submitted:      %d (%d failed)\n", len(results), failed)
	fmt.Printf("  Auto-approved:  %d\n", stats.AutoApproved)
	fmt.Printf("  Manual review:  %d\n", stats.ManualReview)
	fmt.Printf("  Rejected:       %d\n", stats.Rejected)
	fmt.Printf("  Avg routing:    %v\n", stats.AvgProcessingTime)
	fmt.Printf("\n")

	return nil
}
