package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BetsPlaced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_bets_total",
			Help: "Total settled wagers",
		},
		[]string{"game"},
	)

	CoinsWagered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_coins_wagered_total",
			Help: "Total coins debited for wagers",
		},
		[]string{"game"},
	)

	CoinsPaidOut = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "casino_coins_paid_total",
			Help: "Total coins credited as winnings",
		},
		[]string{"game"},
	)

	RejectedBets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "casino_rejected_bets_total",
			Help: "Bets rejected before debit (validation or funds)",
		},
	)
)

func Init() {
	prometheus.MustRegister(BetsPlaced)
	prometheus.MustRegister(CoinsWagered)
	prometheus.MustRegister(CoinsPaidOut)
	prometheus.MustRegister(RejectedBets)
}

func Serve(port string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(":"+port, mux)
}
