package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ppiankov/claimsort/internal/api"
	"github.com/ppiankov/claimsort/internal/pipeline"
	"github.com/spf13/cobra"
)

var servePort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the claims HTTP API",
	Long: `Serve exposes the claim pipeline over HTTP:

  POST  /api/v1/claims             submit a claim (multipart)
  GET   /api/v1/claims             list claims, newest first
  GET   /api/v1/claims/:id         fetch one claim
  PATCH /api/v1/claims/:id/status  operator status transition
  GET   /api/v1/stats              processing statistics
  GET   /health                    liveness

Claims live in process memory for the lifetime of the server.

Example:
  claimsort serve
  claimsort serve --port 9090 --provider plaintext`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
	serveCmd.Flags().StringVar(&submitProvider, "provider", "", "extraction provider (simulated, plaintext, openai)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := loadConfig()
	applyExtractionFlags(cfg)
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	log := newLogger(cfg)
	p, err := pipeline.New(ctx, cfg, log)
	if err != nil {
		return err
	}

	server := api.NewServer(api.NewHandler(p, log), cfg.Server, log)
	return server.Run(ctx)
}
