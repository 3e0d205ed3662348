package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/claimsort/internal/logging"
	"github.com/ppiankov/claimsort/internal/model"
	"github.com/ppiankov/claimsort/internal/pipeline"
	"github.com/ppiankov/claimsort/internal/worker"
	"github.com/spf13/cobra"
)

var (
	submitProvider string
	submitTimeout  time.Duration
)

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit <manifest.json>",
	Short: "Submit a single claim and print the routing decision",
	Long: `Submit runs one claim through the full evaluation pipeline:
- Process the attached documents
- Extract structured information from their text
- Calculate the complexity score and priority
- Decide the route: auto-approve, reject, or manual review

The manifest is a JSON file with the claim data and attachment paths:

  {
    "claim_type": "auto",
    "claim_amount": 3000,
    "claimant": {
      "name": "Jane Doe",
      "email": "jane@example.com",
      "phone": "555-0100",
      "policy_number": "POL-12345"
    },
    "files": ["police-report.pdf", "damage.jpg"]
  }

Example:
  claimsort submit claim.json
  claimsort submit claim.json --provider plaintext
  claimsort submit claim.json --provider openai`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVar(&submitProvider, "provider", "", "extraction provider (simulated, plaintext, openai)")
	submitCmd.Flags().DurationVar(&submitTimeout, "timeout", 2*time.Minute, "overall submission timeout")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	cfg := loadConfig()
	applyExtractionFlags(cfg)

	log := newLogger(cfg)
	p, err := pipeline.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	manifest, uploads, err := worker.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Submitting: %s (%d documents)\n", manifestPath, len(uploads))
		fmt.Fprintf(os.Stderr, "Provider: %s\n\n", cfg.Extraction.Provider)
	}

	claim, err := p.SubmitClaim(ctx, manifest.Submission, uploads)
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}

	printClaim(claim)
	return nil
}

// applyExtractionFlags overlays CLI flags and provider credentials from the
// environment onto the configuration
func applyExtractionFlags(cfg *model.Config) {
	if submitProvider != "" {
		cfg.Extraction.Provider = submitProvider
	}
	if cfg.Extraction.Provider == "openai" && cfg.Extraction.APIKey == "" {
		cfg.Extraction.APIKey = os.Getenv("OPENAI_API_KEY")
	}
}

// newLogger builds the configured logger, falling back to the nop logger so
// a bad level never blocks a submission
func newLogger(cfg *model.Config) logging.Logger {
	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
		return logging.NewNop()
	}
	return log
}

// printClaim renders the routing outcome for one claim
func printClaim(claim *model.Claim) {
	fmt.Printf("\n")
	fmt.Printf("  Claim:      %s (%s)\n", claim.ClaimNumber, claim.Type)
	fmt.Printf("  Amount:     $%.2f\n", claim.Amount)
	fmt.Printf("  Documents:  %d\n", len(claim.Documents))
	fmt.Printf("  Score:      %d/100 (%s priority)\n", claim.ComplexityScore, claim.Priority)
	if len(claim.ComplexityFactors) > 0 {
		fmt.Printf("  Factors:    %s\n", strings.Join(claim.ComplexityFactors, "; "))
	}
	fmt.Printf("  Route:      %s (confidence %.2f)\n", claim.Routing.Route, claim.Routing.Confidence)
	fmt.Printf("  Reason:     %s\n", claim.Routing.Reason)
	if claim.Routing.ReviewerAssigned != "" {
		fmt.Printf("  Reviewer:   %s (est. %dh)\n", claim.Routing.ReviewerAssigned, claim.Routing.EstimatedReviewTime)
	}
	fmt.Printf("  Status:     %s\n", claim.Status)
	fmt.Printf("\n")
}
