package ledger

import (
	"time"

	"github.com/valyala/fasthttp"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records the outcome of remote calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Doer executes a single HTTP exchange. *fasthttp.Client satisfies it.
	Doer interface {
		DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
	}
)
