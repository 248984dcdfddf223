package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerview",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger service operations.",
	}, []string{"operation", "node", "status"})
	ledgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ledgerview",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger service operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "node", "status"})
)

// LedgerClient tracks metrics for calls to the ledger service.
type LedgerClient struct {
	node string
}

// NewLedgerClient constructs a metrics collector for calls to node.
func NewLedgerClient(node string) *LedgerClient {
	if node == "" {
		node = "unknown"
	}
	return &LedgerClient{node: node}
}

// Observe records a single call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerRequestsTotal.WithLabelValues(operation, m.node, status).Inc()
	ledgerRequestDuration.WithLabelValues(operation, m.node, status).Observe(time.Since(started).Seconds())
}
