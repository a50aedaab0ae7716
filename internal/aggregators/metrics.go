package aggregators

import (
	"flow-aggregator/internal/shared/metrics"
)

// metricFlowsAggregatedTotal counts dataset rows folded into the aggregated table.
// Rows that abort the run are counted once under their error code.
//
// metricGroupsCreatedTotal counts new (bucket, protocol, destination) groups. For a run over
// the two-row example
//
//	TCP,01/01/202000:00:00,1.1.1.1,...
//	TCP,01/01/202000:10:00,1.1.1.1,...
//
// flows_aggregated_total grows by 2 and groups_created_total by 1.
var (
	metricFlowsAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "flows_aggregated_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricGroupsCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "groups_created_total",
		},
		[]string{},
	)
)
