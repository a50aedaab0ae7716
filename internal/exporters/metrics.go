package exporters

import (
	"flow-aggregator/internal/shared/metrics"
)

var (
	metricPartitionFilesWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExport,
			Name:      "partition_files_written_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
