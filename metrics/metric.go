package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/syncstate/ledger-hub/logging"
)

var (
	LastCommittedBlockGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "last_committed_block",
		Help: "Number of the last block committed to the root chain.",
	})

	LastVerifiedBlockGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "last_verified_block",
		Help: "Number of the last block with an accepted proof.",
	})

	TotalTransactionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_transactions",
		Help: "Total count of executed transactions.",
	})

	OutstandingTxsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "outstanding_transactions",
		Help: "Count of committed transactions still waiting for a proof.",
	})

	MetricsItems = []prometheus.Collector{
		LastCommittedBlockGauge,
		LastVerifiedBlockGauge,
		TotalTransactionsGauge,
		OutstandingTxsGauge,
	}
)

const DefaultMetricsAddress = "0.0.0.0:9090"

type Metrics struct {
	httpAddress string
	registry    *prometheus.Registry
	httpServer  *http.Server
}

func NewMetrics(address string) *Metrics {
	if address == "" {
		address = DefaultMetricsAddress
	}
	return &Metrics{
		httpAddress: address,
		registry:    prometheus.NewRegistry(),
	}
}

func (m *Metrics) Start() {
	m.registry.MustRegister(MetricsItems...)
	go m.serve()
}

func (m *Metrics) serve() {
	router := mux.NewRouter()
	router.Path("/metrics").Handler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.httpServer = &http.Server{
		Addr:    m.httpAddress,
		Handler: router,
	}
	if err := m.httpServer.ListenAndServe(); err != nil {
		logging.Logger.Errorf("failed to listen and serve, err=%s", err.Error())
		panic(err)
	}
}
