// Package compose implements the two-phase flow for new ledger entries:
// a draft is signed by the service, shown for confirmation, then submitted.
package compose

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgerview/internal/model"
)

// State is the phase of a workflow.
type State string

const (
	StateDraft        State = "draft"
	StateConfirmation State = "confirmation"
	StateSubmitted    State = "submitted"
	StateAbandoned    State = "abandoned"
)

// Confirmation is a signed draft waiting for explicit submission.
type Confirmation struct {
	Signature string `json:"signature"`
	// Transaction is the canonical echo of the signed fields.
	Transaction model.Transaction `json:"transaction"`

	sender    model.Address
	recipient model.Address
	amount    model.Amount
	url       string
}

// Status is a point-in-time view of a workflow.
type Status struct {
	Kind         model.Kind    `json:"kind"`
	State        State         `json:"state"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
	LastOutcome  State         `json:"last_outcome,omitempty"`
	// Busy is set while a generate or submit call is in flight.
	Busy bool `json:"busy,omitempty"`
}

// Workflow holds at most one in-flight entry of a single kind. Submitted and
// Abandoned are terminal for the entry; the workflow then starts over with an
// empty draft and remembers the outcome.
type Workflow struct {
	kind   model.Kind
	ledger Ledger
	logger *zap.Logger

	mu           sync.Mutex
	state        State
	confirmation *Confirmation
	last         State
	busy         bool
	// epoch changes on every reset so a call in flight can tell the entry
	// it started for is gone.
	epoch uint64
}

// NewWorkflow builds a workflow for kind.
func NewWorkflow(kind model.Kind, ledger Ledger, logger *zap.Logger) (*Workflow, error) {
	if _, ok := model.ParseKind(string(kind)); !ok {
		return nil, fmt.Errorf("unknown entry kind %q", kind)
	}
	if ledger == nil {
		return nil, errors.New("compose ledger is required")
	}
	return &Workflow{
		kind:   kind,
		ledger: ledger,
		logger: logger.With(zap.String("kind", string(kind))),
		state:  StateDraft,
	}, nil
}

// Kind returns the entry kind handled by the workflow.
func (w *Workflow) Kind() model.Kind {
	return w.kind
}

// State returns the current phase.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Confirmation returns the pending confirmation, if any.
func (w *Workflow) Confirmation() (Confirmation, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.confirmation == nil {
		return Confirmation{}, false
	}
	return *w.confirmation, true
}

// LastOutcome returns the terminal state of the previous entry, if any.
func (w *Workflow) LastOutcome() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Status returns a snapshot of the workflow.
func (w *Workflow) Status() Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	s := Status{Kind: w.kind, State: w.state, LastOutcome: w.last, Busy: w.busy}
	if w.confirmation != nil {
		c := *w.confirmation
		s.Confirmation = &c
	}
	return s
}

// Generate validates d and has the service sign it. On success the workflow
// moves to Confirmation, replacing any earlier confirmation. On failure the
// current state is kept. The lock is not held during the remote call; a
// concurrent Generate or Submit gets ErrBusy, and an Abandon in the meantime
// discards the signature with ErrAbandoned.
func (w *Workflow) Generate(ctx context.Context, d Draft) (Confirmation, error) {
	e, err := validate(w.kind, d)
	if err != nil {
		return Confirmation{}, err
	}

	epoch, err := w.begin()
	if err != nil {
		return Confirmation{}, err
	}

	var signed model.Signed
	switch w.kind {
	case model.KindInvestment:
		signed, err = w.ledger.GenerateInvestment(ctx, e.sender, e.recipient, e.amount, e.privateKey, e.url)
	default:
		signed, err = w.ledger.GenerateTransaction(ctx, e.sender, e.recipient, e.amount, e.privateKey)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false

	if err != nil {
		w.logger.Warn("generate failed", zap.Object("draft", d), zap.Error(err))
		return Confirmation{}, fmt.Errorf("generate %s: %w", w.kind, err)
	}
	if epoch != w.epoch {
		w.logger.Info("signature discarded, draft abandoned", zap.Object("draft", d))
		return Confirmation{}, ErrAbandoned
	}

	c := &Confirmation{
		Signature:   signed.Signature,
		Transaction: signed.Transaction,
		sender:      e.sender,
		recipient:   e.recipient,
		amount:      e.amount,
		url:         e.url,
	}
	w.state = StateConfirmation
	w.confirmation = c
	w.logger.Info("draft signed", zap.Object("draft", d))
	return *c, nil
}

// Submit sends the pending confirmation. On HTTP 201 the entry is Submitted
// and the workflow resets to an empty draft. Any failure keeps the
// confirmation so the submission can be retried without signing again.
func (w *Workflow) Submit(ctx context.Context) (model.Status, error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return model.Status{}, ErrBusy
	}
	if w.state != StateConfirmation || w.confirmation == nil || w.confirmation.Signature == "" {
		w.mu.Unlock()
		return model.Status{}, ErrNotConfirmed
	}
	w.busy = true
	c := *w.confirmation
	w.mu.Unlock()

	sender, recipient, amount, link := c.fields()

	var (
		status model.Status
		err    error
	)
	switch w.kind {
	case model.KindInvestment:
		status, err = w.ledger.SubmitInvestment(ctx, sender, recipient, amount, c.Signature, link)
	default:
		status, err = w.ledger.SubmitTransaction(ctx, sender, recipient, amount, c.Signature)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.busy = false

	if err != nil {
		w.logger.Warn("submit failed, confirmation kept", zap.Int("status", status.Code), zap.Error(err))
		return status, fmt.Errorf("submit %s: %w", w.kind, err)
	}

	w.reset(StateSubmitted)
	w.logger.Info("entry submitted", zap.Int("status", status.Code), zap.String("message", status.Message))
	return status, nil
}

// Abandon discards the entry in progress. It does not wait for a call in
// flight.
func (w *Workflow) Abandon() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset(StateAbandoned)
}

// begin marks a remote call in flight and returns the current epoch.
func (w *Workflow) begin() (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy {
		return 0, ErrBusy
	}
	w.busy = true
	return w.epoch, nil
}

func (w *Workflow) reset(outcome State) {
	w.epoch++
	w.last = outcome
	w.state = StateDraft
	w.confirmation = nil
}

// fields prefers the service echo and falls back to the validated draft.
func (c *Confirmation) fields() (model.Address, model.Address, model.Amount, string) {
	sender, recipient, amount, link := c.sender, c.recipient, c.amount, c.url
	if c.Transaction.Sender != "" {
		sender = c.Transaction.Sender
	}
	if c.Transaction.Recipient != "" {
		recipient = c.Transaction.Recipient
	}
	if !c.Transaction.Value.IsZero() {
		amount = c.Transaction.Value
	}
	if c.Transaction.URL != "" {
		link = c.Transaction.URL
	}
	return sender, recipient, amount, link
}
