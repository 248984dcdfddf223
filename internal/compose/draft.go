package compose

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"

	"github.com/goodnatureofminers/ledgerview/internal/model"
)

var (
	// ErrNotConfirmed is returned by Submit when no signed draft is pending.
	ErrNotConfirmed = errors.New("no confirmed draft to submit")
	// ErrBusy is returned while another generate or submit call is in flight.
	ErrBusy = errors.New("another request for this entry is in flight")
	// ErrAbandoned is returned by Generate when the draft was abandoned
	// before the signature arrived.
	ErrAbandoned = errors.New("draft abandoned while signing")
)

// ValidationError names the first draft field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Draft is the user input of an entry in progress. PrivateKey is transient:
// it is only forwarded to the generate call and never logged.
type Draft struct {
	Sender     string `json:"sender_address"`
	Recipient  string `json:"recipient_address"`
	Amount     string `json:"amount"`
	PrivateKey string `json:"sender_private_key"`
	URL        string `json:"url,omitempty"`
}

// MarshalLogObject implements zapcore.ObjectMarshaler without the private key.
func (d Draft) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("sender", d.Sender)
	enc.AddString("recipient", d.Recipient)
	enc.AddString("amount", d.Amount)
	if d.URL != "" {
		enc.AddString("url", d.URL)
	}
	enc.AddBool("has_private_key", d.PrivateKey != "")
	return nil
}

// entry is a validated draft.
type entry struct {
	sender     model.Address
	recipient  model.Address
	amount     model.Amount
	privateKey string
	url        string
}

func validate(kind model.Kind, d Draft) (entry, error) {
	sender := strings.TrimSpace(d.Sender)
	if sender == "" {
		return entry{}, &ValidationError{Field: "sender_address", Reason: "is required"}
	}
	recipient := strings.TrimSpace(d.Recipient)
	if recipient == "" {
		return entry{}, &ValidationError{Field: "recipient_address", Reason: "is required"}
	}
	raw := strings.TrimSpace(d.Amount)
	if raw == "" {
		return entry{}, &ValidationError{Field: "amount", Reason: "is required"}
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return entry{}, &ValidationError{Field: "amount", Reason: "must be a number"}
	}
	if !amount.IsPositive() {
		return entry{}, &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	key := strings.TrimSpace(d.PrivateKey)
	if key == "" {
		return entry{}, &ValidationError{Field: "sender_private_key", Reason: "is required"}
	}
	e := entry{
		sender:     model.Address(sender),
		recipient:  model.Address(recipient),
		amount:     amount,
		privateKey: key,
	}
	if kind != model.KindInvestment {
		return e, nil
	}
	link := strings.TrimSpace(d.URL)
	if link == "" {
		return entry{}, &ValidationError{Field: "url", Reason: "is required"}
	}
	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return entry{}, &ValidationError{Field: "url", Reason: "must be an absolute http(s) url"}
	}
	e.url = link
	return e, nil
}
