package compose

import (
	"context"

	"github.com/goodnatureofminers/ledgerview/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Ledger is the part of the ledger client used to sign and submit entries.
	Ledger interface {
		GenerateTransaction(ctx context.Context, sender, recipient model.Address, amount model.Amount, privateKey string) (model.Signed, error)
		SubmitTransaction(ctx context.Context, sender, recipient model.Address, amount model.Amount, signature string) (model.Status, error)
		GenerateInvestment(ctx context.Context, sender, recipient model.Address, amount model.Amount, privateKey, link string) (model.Signed, error)
		SubmitInvestment(ctx context.Context, sender, recipient model.Address, amount model.Amount, signature, link string) (model.Status, error)
	}
)
