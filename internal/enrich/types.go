package enrich

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Fetcher loads a JSON document from an absolute URL.
	Fetcher interface {
		FetchJSON(ctx context.Context, url string) ([]byte, error)
	}
	// Metrics records resolution outcomes.
	Metrics interface {
		ObserveResolve(outcome string, started time.Time)
	}
)
