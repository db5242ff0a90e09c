package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Reveals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "creditmarket",
		Name:      "reveals_total",
		Help:      "Contact reveal requests by outcome.",
	}, []string{"outcome"})

	Transactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "creditmarket",
		Name:      "credit_transactions_total",
		Help:      "Ledger transactions by type.",
	}, []string{"type"})

	PurchasesSettled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "creditmarket",
		Name:      "purchases_settled_total",
		Help:      "Credit purchases confirmed by the billing system.",
	})
)

// Handler serves the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
