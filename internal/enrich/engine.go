// Package enrich resolves engagement scores for investments from the JSON
// document behind each investment URL.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerview/internal/model"
	"github.com/goodnatureofminers/ledgerview/pkg/workerpool"
)

const (
	OutcomeFound = "found"
	OutcomeMiss  = "miss"
	OutcomeError = "error"

	defaultSuffix  = "/.json"
	defaultKey     = "ups"
	defaultWorkers = 8
	defaultRPS     = 20
)

// Config controls how documents are located and searched.
type Config struct {
	// Suffix is appended to the investment URL to reach its JSON document.
	Suffix string
	// Key is the entry name looked up in the document.
	Key     string
	Workers int
	// RPS caps document fetches per second. Zero or less disables the cap.
	RPS int
}

// DefaultConfig returns the discovery settings for reddit-style pages.
func DefaultConfig() Config {
	return Config{
		Suffix:  defaultSuffix,
		Key:     defaultKey,
		Workers: defaultWorkers,
		RPS:     defaultRPS,
	}
}

// Result is the enrichment of a single investment. Value is the raw JSON of
// the matched entry and is only set when Found is true.
type Result struct {
	Found bool
	Value json.RawMessage
}

// Engine resolves investments independently of each other. A failed fetch or
// a document without the key yields an empty Result, never an error.
type Engine struct {
	fetcher Fetcher
	metrics Metrics
	cfg     Config
	limiter ratelimit.Limiter
	logger  *zap.Logger
}

// NewEngine builds an Engine. Empty Config fields fall back to DefaultConfig.
func NewEngine(fetcher Fetcher, metrics Metrics, cfg Config, logger *zap.Logger) (*Engine, error) {
	if fetcher == nil {
		return nil, errors.New("enrichment fetcher is required")
	}
	if metrics == nil {
		return nil, errors.New("enrichment metrics is required")
	}
	def := DefaultConfig()
	if cfg.Suffix == "" {
		cfg.Suffix = def.Suffix
	}
	if cfg.Key == "" {
		cfg.Key = def.Key
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}
	return &Engine{
		fetcher: fetcher,
		metrics: metrics,
		cfg:     cfg,
		limiter: limiter,
		logger:  logger,
	}, nil
}

// DocumentURL derives the document location for an investment URL.
func (e *Engine) DocumentURL(link string) string {
	return strings.TrimRight(link, "/") + e.cfg.Suffix
}

// Resolve fetches and searches the document of a single investment.
func (e *Engine) Resolve(ctx context.Context, link string) Result {
	started := time.Now()
	e.limiter.Take()

	doc, err := e.fetcher.FetchJSON(ctx, e.DocumentURL(link))
	if err != nil {
		e.logger.Debug("enrichment fetch failed", zap.String("url", link), zap.Error(err))
		e.metrics.ObserveResolve(OutcomeError, started)
		return Result{}
	}

	value, ok := Find(doc, e.cfg.Key)
	if !ok {
		e.logger.Debug("enrichment key not found", zap.String("url", link), zap.String("key", e.cfg.Key))
		e.metrics.ObserveResolve(OutcomeMiss, started)
		return Result{}
	}
	e.metrics.ObserveResolve(OutcomeFound, started)
	return Result{Found: true, Value: json.RawMessage(value.Raw)}
}

// Enrich resolves every investment on the worker pool and reports each result
// through onResult as soon as it is ready. Results arrive in any order;
// onResult must be safe for concurrent use.
func (e *Engine) Enrich(ctx context.Context, items []model.Investment, onResult func(index int, r Result)) error {
	return workerpool.Each(ctx, e.cfg.Workers, items, func(ctx context.Context, i int, item model.Investment) {
		onResult(i, e.Resolve(ctx, item.URL))
	})
}
