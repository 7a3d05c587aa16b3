package services

import "github.com/prometheus/client_golang/prometheus"

var (
	documentsProcessed *prometheus.CounterVec
	fieldsHumanized    *prometheus.CounterVec
	runsTotal          *prometheus.CounterVec
)

func init() {
	documentsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "humanizer_documents_processed_total",
			Help: "Documents processed by bulk humanization, by collection and outcome.",
		},
		[]string{"collection", "outcome"},
	)
	fieldsHumanized = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "humanizer_fields_updated_total",
			Help: "Text fields rewritten and persisted, by collection.",
		},
		[]string{"collection"},
	)
	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "humanizer_runs_total",
			Help: "Full humanization runs, by result.",
		},
		[]string{"result"},
	)
	prometheus.MustRegister(documentsProcessed, fieldsHumanized, runsTotal)
}
