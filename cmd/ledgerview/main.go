package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerview/internal/compose"
	"github.com/goodnatureofminers/ledgerview/internal/enrich"
	"github.com/goodnatureofminers/ledgerview/internal/ledger"
	"github.com/goodnatureofminers/ledgerview/internal/metrics"
	"github.com/goodnatureofminers/ledgerview/internal/model"
	"github.com/goodnatureofminers/ledgerview/internal/transport"
	"github.com/goodnatureofminers/ledgerview/internal/view"
)

type config struct {
	LedgerURL       string        `long:"ledger-url" env:"LEDGERVIEW_LEDGER_URL" description:"ledger service base URL" default:"http://127.0.0.1:5000"`
	Addr            string        `long:"addr" env:"LEDGERVIEW_ADDR" description:"HTTP listen address" default:":8080"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"LEDGERVIEW_HTTP_TIMEOUT" description:"timeout for ledger and document requests" default:"30s"`
	RefreshInterval time.Duration `long:"refresh-interval" env:"LEDGERVIEW_REFRESH_INTERVAL" description:"chain refresh interval" default:"10s"`
	EnrichWorkers   int           `long:"enrich-workers" env:"LEDGERVIEW_ENRICH_WORKERS" description:"concurrent document lookups" default:"8"`
	EnrichRPS       int           `long:"enrich-rps" env:"LEDGERVIEW_ENRICH_RPS" description:"document fetches per second, 0 disables the cap" default:"20"`
	EnrichKey       string        `long:"enrich-key" env:"LEDGERVIEW_ENRICH_KEY" description:"document key holding the engagement score" default:"ups"`
	EnrichSuffix    string        `long:"enrich-suffix" env:"LEDGERVIEW_ENRICH_SUFFIX" description:"suffix appended to investment URLs" default:"/.json"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ledgerview failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	parsed, err := url.Parse(cfg.LedgerURL)
	if err != nil {
		return fmt.Errorf("parse ledger url: %w", err)
	}
	client, err := ledger.NewClient(cfg.LedgerURL, cfg.HTTPTimeout, nil, metrics.NewLedgerClient(parsed.Host))
	if err != nil {
		return fmt.Errorf("init ledger client: %w", err)
	}

	enrichMetrics := metrics.NewEnrichment()
	engine, err := enrich.NewEngine(client, enrichMetrics, enrich.Config{
		Suffix:  cfg.EnrichSuffix,
		Key:     cfg.EnrichKey,
		Workers: cfg.EnrichWorkers,
		RPS:     cfg.EnrichRPS,
	}, logger.Named("enrich"))
	if err != nil {
		return fmt.Errorf("init enrichment: %w", err)
	}

	svc, err := view.NewService(client, engine, enrichMetrics, logger.Named("view"))
	if err != nil {
		return fmt.Errorf("init view: %w", err)
	}

	workflows, err := compose.NewWorkflows(client, logger)
	if err != nil {
		return fmt.Errorf("init compose: %w", err)
	}
	handlers := make(map[model.Kind]transport.Workflow, len(workflows))
	for kind, wf := range workflows {
		handlers[kind] = wf
	}
	handler, err := transport.NewViewHandler(svc, handlers, logger.Named("transport"))
	if err != nil {
		return fmt.Errorf("init transport: %w", err)
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		if err := svc.Run(ctx, cfg.RefreshInterval); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("refresh loop stopped", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr), zap.String("ledger", cfg.LedgerURL))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
