package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "crm_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "collection", "status"},
	)

	// PendencyMutations tracks dismiss/discard waiver mutations
	PendencyMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_pendency_mutations_total",
			Help: "Number of pendency waiver mutations",
		},
		[]string{"action", "status"},
	)

	// Confirmations tracks the two-phase confirmation lifecycle
	Confirmations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_confirmations_total",
			Help: "Number of pending confirmations by outcome",
		},
		[]string{"action", "outcome"},
	)

	// ImportedRows tracks spreadsheet import results
	ImportedRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_imported_rows_total",
			Help: "Number of spreadsheet rows processed by result",
		},
		[]string{"result"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "crm_active_connections",
			Help: "Number of active connections",
		},
	)
)
