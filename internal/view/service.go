// Package view keeps the client-side view-model of the remote ledger: the
// last good chain snapshot, the selected view and investment engagement.
package view

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerview/internal/chain"
	"github.com/goodnatureofminers/ledgerview/internal/clock"
	"github.com/goodnatureofminers/ledgerview/internal/enrich"
	"github.com/goodnatureofminers/ledgerview/internal/model"
)

// Service owns the view state. Enrichment results are applied only while
// the generation they were started for is still current.
type Service struct {
	ledger   Ledger
	enricher Enricher
	metrics  Metrics
	logger   *zap.Logger
	now      func() time.Time
	every    func(context.Context, time.Duration, func(context.Context)) error

	mu          sync.Mutex
	chain       model.Chain
	stream      []model.Transaction
	loaded      bool
	refreshedAt time.Time
	mode        Mode
	generation  uint64
	engagement  map[int]enrich.Result
	task        Task
	// refreshSeq is handed out when a fetch starts; appliedSeq is the token
	// of the fetch whose chain is in place.
	refreshSeq uint64
	appliedSeq uint64
}

// NewService builds a Service showing the transactions view.
func NewService(ledger Ledger, enricher Enricher, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if ledger == nil {
		return nil, errors.New("view ledger is required")
	}
	if enricher == nil {
		return nil, errors.New("view enricher is required")
	}
	if metrics == nil {
		return nil, errors.New("view metrics is required")
	}
	return &Service{
		ledger:     ledger,
		enricher:   enricher,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
		every:      clock.Every,
		stream:     []model.Transaction{},
		mode:       ModeTransactions,
		engagement: map[int]enrich.Result{},
		task:       doneTask(0),
	}, nil
}

// Run refreshes the chain every interval until ctx is canceled. Failed
// refreshes are logged and the previous snapshot stays in place.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	return s.every(ctx, interval, func(ctx context.Context) {
		if _, err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("periodic refresh failed, keeping last snapshot", zap.Error(err))
		}
	})
}

// Refresh fetches the chain and replaces the snapshot on success. When the
// investments view is shown, enrichment restarts for the new rows.
//
// A fetch that completes after a later one has been applied is dropped and
// the current task is returned.
func (s *Service) Refresh(ctx context.Context) (Task, error) {
	s.mu.Lock()
	s.refreshSeq++
	seq := s.refreshSeq
	s.mu.Unlock()

	c, err := s.ledger.FetchChain(ctx)
	if err != nil {
		s.logger.Warn("fetch chain failed", zap.Error(err))
		return Task{}, fmt.Errorf("refresh chain: %w", err)
	}
	stream := chain.Flatten(c.Blocks)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.appliedSeq {
		s.metrics.ObserveStale()
		s.logger.Debug("dropping superseded chain fetch", zap.Uint64("seq", seq), zap.Uint64("applied", s.appliedSeq))
		return s.task, nil
	}
	s.appliedSeq = seq
	s.chain = c
	s.stream = stream
	s.loaded = true
	s.refreshedAt = s.now()
	s.logger.Debug("chain refreshed", zap.Int("blocks", len(c.Blocks)), zap.Int("entries", len(stream)))
	return s.switchLocked(ctx, s.mode), nil
}

// Select switches the shown view. Any enrichment still running for the
// previous view becomes stale.
func (s *Service) Select(ctx context.Context, mode Mode) (Task, error) {
	if _, ok := ParseMode(string(mode)); !ok || mode == "" {
		return Task{}, fmt.Errorf("unknown view mode %q", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.switchLocked(ctx, mode), nil
}

func (s *Service) switchLocked(ctx context.Context, mode Mode) Task {
	s.mode = mode
	s.generation++
	s.engagement = map[int]enrich.Result{}
	generation := s.generation

	if mode != ModeInvestments {
		s.task = doneTask(generation)
		return s.task
	}
	items := chain.Classify(s.stream).Investments
	if len(items) == 0 {
		s.task = doneTask(generation)
		return s.task
	}

	done := make(chan struct{})
	// Superseded lookups run to completion; their results are dropped.
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer close(done)
		err := s.enricher.Enrich(ctx, items, func(index int, r enrich.Result) {
			s.apply(generation, index, r)
		})
		if err != nil {
			s.logger.Debug("enrichment stopped", zap.Uint64("generation", generation), zap.Error(err))
		}
	}()
	s.task = Task{Generation: generation, Done: done}
	return s.task
}

func (s *Service) apply(generation uint64, index int, r enrich.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		s.metrics.ObserveStale()
		return
	}
	s.engagement[index] = r
}

// Current returns the view-model for the shown view. Classification is
// recomputed from the snapshot on every call.
func (s *Service) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Mode:        s.mode,
		Generation:  s.generation,
		Length:      s.chain.Length,
		Loaded:      s.loaded,
		RefreshedAt: s.refreshedAt,
	}
	classified := chain.Classify(s.stream)
	if s.mode == ModeTransactions {
		snap.Rows = classified.Transactions
		return snap
	}

	snap.Investments = make([]InvestmentRow, len(classified.Investments))
	for i, inv := range classified.Investments {
		row := InvestmentRow{Investment: inv}
		if r, ok := s.engagement[i]; ok {
			row.Resolved = true
			if r.Found {
				value := r.Value
				row.Engagement = &value
			}
		}
		snap.Investments[i] = row
	}
	return snap
}

// Balance replays the current snapshot for address.
func (s *Service) Balance(address model.Address) model.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return chain.Balance(address, s.stream)
}

// RemoteBalance asks the ledger service for its own figure.
func (s *Service) RemoteBalance(ctx context.Context, address model.Address) (model.RemoteBalance, error) {
	return s.ledger.RemoteBalance(ctx, address)
}

// Nodes lists the peers known to the ledger service.
func (s *Service) Nodes(ctx context.Context) (model.Nodes, error) {
	return s.ledger.FetchNodes(ctx)
}

// RegisterNode adds a peer to the ledger service registry.
func (s *Service) RegisterNode(ctx context.Context, address string) (json.RawMessage, error) {
	return s.ledger.RegisterNode(ctx, address)
}

// ResolveNodes triggers consensus on the ledger service.
func (s *Service) ResolveNodes(ctx context.Context) (json.RawMessage, error) {
	return s.ledger.ResolveNodes(ctx)
}

// Mine asks the ledger service for a new block.
func (s *Service) Mine(ctx context.Context) (json.RawMessage, error) {
	return s.ledger.Mine(ctx)
}

// NewWallet creates a key pair on the ledger service.
func (s *Service) NewWallet(ctx context.Context) (model.Wallet, error) {
	return s.ledger.CreateWallet(ctx)
}
