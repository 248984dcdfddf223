package chain

import (
	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/ledgerview/internal/model"
)

// Balance replays the stream for address: incoming values are added and
// outgoing values subtracted. Both sides are checked, so a self-transfer
// nets to zero. Addresses are compared exactly.
func Balance(address model.Address, stream []model.Transaction) model.Amount {
	balance := decimal.Zero
	for _, tx := range stream {
		if tx.Recipient == address {
			balance = balance.Add(tx.Value)
		}
		if tx.Sender == address {
			balance = balance.Sub(tx.Value)
		}
	}
	return balance
}
