package view

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/ledgerview/internal/enrich"
	"github.com/goodnatureofminers/ledgerview/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger is the part of the ledger client the view reads from.
	Ledger interface {
		FetchChain(ctx context.Context) (model.Chain, error)
		FetchNodes(ctx context.Context) (model.Nodes, error)
		CreateWallet(ctx context.Context) (model.Wallet, error)
		Mine(ctx context.Context) (json.RawMessage, error)
		RegisterNode(ctx context.Context, address string) (json.RawMessage, error)
		ResolveNodes(ctx context.Context) (json.RawMessage, error)
		RemoteBalance(ctx context.Context, address model.Address) (model.RemoteBalance, error)
	}
	// Enricher resolves engagement for a list of investments.
	Enricher interface {
		Enrich(ctx context.Context, items []model.Investment, onResult func(index int, r enrich.Result)) error
	}
	// Metrics counts enrichment results that arrived for a superseded view.
	Metrics interface {
		ObserveStale()
	}
)
