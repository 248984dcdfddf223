// Package model defines the wire and view types of the remote ledger.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a fixed-point transfer value. Arithmetic on it is exact.
type Amount = decimal.Decimal

// Address identifies a wallet on the ledger. The remote service uses the
// number 0 as the sender of mining rewards, so both JSON strings and JSON
// numbers are accepted; numbers keep their literal text.
type Address string

// UnmarshalJSON implements json.Unmarshaler.
func (a *Address) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Address(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("address: %w", err)
		}
		*a = Address(n.String())
		return nil
	}
}

// Kind discriminates plain transactions from investments.
type Kind string

const (
	KindTransaction Kind = "transaction"
	KindInvestment  Kind = "investment"
)

// ParseKind maps a textual kind to Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindTransaction:
		return KindTransaction, true
	case KindInvestment:
		return KindInvestment, true
	}
	return "", false
}

// Transaction is a ledger entry as the remote service serialises it.
type Transaction struct {
	Sender    Address `json:"sender_address"`
	Recipient Address `json:"recipient_address"`
	Value     Amount  `json:"value"`
	URL       string  `json:"url,omitempty"`
	Signature string  `json:"signature,omitempty"`
}

// Kind reports whether the entry carries a URL.
func (t Transaction) Kind() Kind {
	if strings.TrimSpace(t.URL) != "" {
		return KindInvestment
	}
	return KindTransaction
}

// Transfer returns the fields shared by both kinds.
func (t Transaction) Transfer() Transfer {
	return Transfer{
		Sender:    t.Sender,
		Recipient: t.Recipient,
		Value:     t.Value,
		Signature: t.Signature,
	}
}

// Transfer holds the fields common to every entry kind.
type Transfer struct {
	Sender    Address `json:"sender_address"`
	Recipient Address `json:"recipient_address"`
	Value     Amount  `json:"value"`
	Signature string  `json:"signature,omitempty"`
}

// PlainTransaction is a transfer without an attached URL.
type PlainTransaction struct {
	Transfer
}

// Investment is a transfer tagged with the URL of the invested page.
type Investment struct {
	Transfer
	URL string `json:"url"`
}

// Block is a single block of the chain. Proof and PreviousHash are opaque.
type Block struct {
	Index        int64           `json:"index"`
	Timestamp    float64         `json:"timestamp"`
	Transactions []Transaction   `json:"transactions"`
	Proof        json.RawMessage `json:"proof,omitempty"`
	PreviousHash json.RawMessage `json:"previous_hash,omitempty"`
}

// Chain is a point-in-time snapshot of the remote block sequence.
type Chain struct {
	Blocks []Block `json:"chain"`
	Length int     `json:"length"`
}
