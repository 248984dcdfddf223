package chain

import "github.com/goodnatureofminers/ledgerview/internal/model"

// View partitions a flattened stream by entry kind.
type View struct {
	Transactions []model.PlainTransaction
	Investments  []model.Investment
}

// Classify splits the stream into plain transactions and investments,
// keeping the relative order of each.
func Classify(stream []model.Transaction) View {
	v := View{
		Transactions: []model.PlainTransaction{},
		Investments:  []model.Investment{},
	}
	for _, tx := range stream {
		switch tx.Kind() {
		case model.KindInvestment:
			v.Investments = append(v.Investments, model.Investment{Transfer: tx.Transfer(), URL: tx.URL})
		default:
			v.Transactions = append(v.Transactions, model.PlainTransaction{Transfer: tx.Transfer()})
		}
	}
	return v
}
