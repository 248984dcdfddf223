package transport

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/ledgerview/internal/compose"
	"github.com/goodnatureofminers/ledgerview/internal/model"
	"github.com/goodnatureofminers/ledgerview/internal/view"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// View is the view-model served to the presentation layer.
	View interface {
		Select(ctx context.Context, mode view.Mode) (view.Task, error)
		Refresh(ctx context.Context) (view.Task, error)
		Current() view.Snapshot
		Balance(address model.Address) model.Amount
		RemoteBalance(ctx context.Context, address model.Address) (model.RemoteBalance, error)
		Nodes(ctx context.Context) (model.Nodes, error)
		RegisterNode(ctx context.Context, address string) (json.RawMessage, error)
		ResolveNodes(ctx context.Context) (json.RawMessage, error)
		Mine(ctx context.Context) (json.RawMessage, error)
		NewWallet(ctx context.Context) (model.Wallet, error)
	}
	// Workflow is the compose flow of a single entry kind.
	Workflow interface {
		Generate(ctx context.Context, d compose.Draft) (compose.Confirmation, error)
		Submit(ctx context.Context) (model.Status, error)
		Abandon()
		Status() compose.Status
	}
)
