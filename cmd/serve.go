package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/api"
	"github.com/alexiusacademia/gorcc/internal/config"
)

var (
	serveEnvFile string
	serveAddr    string
	serveRate    float64
	serveBurst   int
	serveSteps   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interaction diagram API over HTTP",
	Long: `Start the HTTP API.

Endpoints:
  POST /api/column/envelope  {section, design_point?} → envelope and verdict
  POST /api/column/check     {section, design_point}  → inside, m_rd, utilisation
  POST /api/column/svg       {section, design_point?} → SVG diagram
  POST /api/marker           chat response text        → evaluated markers
  GET  /healthz
  GET  /metrics              Prometheus metrics

Configuration is read from .env and the environment (GORCC_ADDR,
GORCC_RATE, GORCC_BURST, GORCC_STEPS, GORCC_CORS_ORIGINS); flags win.

Examples:
  gorcc serve
  gorcc serve --addr :9090 --rate 20 --burst 40`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveEnvFile, "env-file", ".env", "Dotenv file to load if present")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 0, "Requests per second per client IP (default 5)")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 0, "Rate limiter burst (default 10)")
	serveCmd.Flags().IntVar(&serveSteps, "steps", 0, "Neutral axis sweep steps (default 80)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(serveEnvFile)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = serveAddr
	}
	if flags.Changed("rate") {
		cfg.Rate = serveRate
	}
	if flags.Changed("burst") {
		cfg.Burst = serveBurst
	}
	if flags.Changed("steps") {
		cfg.Steps = serveSteps
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = api.New(cfg, logger).ListenAndServe(ctx)
	stop()
	if err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
