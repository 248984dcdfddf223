// Package chain derives transaction views and balances from a chain snapshot.
// Every function here is pure: the same snapshot always yields the same result.
package chain

import "github.com/goodnatureofminers/ledgerview/internal/model"

// Flatten concatenates the transactions of every block after the first, in
// block order then intra-block order. The block at position 0 is the genesis
// block regardless of the index it reports.
func Flatten(blocks []model.Block) []model.Transaction {
	if len(blocks) <= 1 {
		return []model.Transaction{}
	}
	total := 0
	for _, b := range blocks[1:] {
		total += len(b.Transactions)
	}
	out := make([]model.Transaction, 0, total)
	for _, b := range blocks[1:] {
		out = append(out, b.Transactions...)
	}
	return out
}
