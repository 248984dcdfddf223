package compose

import (
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerview/internal/model"
)

// Workflows holds one workflow per entry kind.
type Workflows map[model.Kind]*Workflow

// NewWorkflows builds the transaction and investment workflows.
func NewWorkflows(ledger Ledger, logger *zap.Logger) (Workflows, error) {
	out := Workflows{}
	for _, kind := range []model.Kind{model.KindTransaction, model.KindInvestment} {
		w, err := NewWorkflow(kind, ledger, logger.Named("compose"))
		if err != nil {
			return nil, err
		}
		out[kind] = w
	}
	return out, nil
}
