package ingestors

import (
	"flow-aggregator/internal/shared/metrics"
)

var (
	metricRowsLoadedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "rows_loaded_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
