package view

import (
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/ledgerview/internal/model"
)

// Mode selects which classified view is shown.
type Mode string

const (
	ModeTransactions Mode = "transactions"
	ModeInvestments  Mode = "investments"
)

// ParseMode maps a query value onto a Mode. The empty string means
// transactions.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case "", ModeTransactions:
		return ModeTransactions, true
	case ModeInvestments:
		return ModeInvestments, true
	}
	return "", false
}

// InvestmentRow is an investment with its engagement, if resolved.
type InvestmentRow struct {
	model.Investment
	// Resolved is false while the lookup is still in flight.
	Resolved bool `json:"resolved"`
	// Engagement is nil while pending or when the document has no score.
	Engagement *json.RawMessage `json:"engagement"`
}

// Snapshot is the view-model handed to the presentation layer.
type Snapshot struct {
	Mode        Mode                     `json:"mode"`
	Generation  uint64                   `json:"generation"`
	Length      int                      `json:"length"`
	Loaded      bool                     `json:"loaded"`
	RefreshedAt time.Time                `json:"refreshed_at,omitzero"`
	Rows        []model.PlainTransaction `json:"transactions,omitempty"`
	Investments []InvestmentRow          `json:"investments,omitempty"`
}

// Task tracks the enrichment started by a view change. Done is closed once
// every result has been applied or dropped.
type Task struct {
	Generation uint64
	Done       <-chan struct{}
}

func doneTask(generation uint64) Task {
	done := make(chan struct{})
	close(done)
	return Task{Generation: generation, Done: done}
}
