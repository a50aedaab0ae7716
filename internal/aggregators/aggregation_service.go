package aggregators

import (
	"context"
	"sort"

	"flow-aggregator/internal/models"
	"flow-aggregator/internal/shared/loggers"
	"flow-aggregator/internal/shared/metrics"
	"flow-aggregator/internal/shared/svcerrors"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// Aggregate groups records by (bucket, protocol, destination) and sums their totals.
	Aggregate(ctx context.Context, records []*models.FlowRecord) (*models.AggregatedTable, error)
}

type aggregationService struct {
	flowDeriver  FlowDeriver
	flowRolluper FlowRolluper
}

func NewAggregationService(flowDeriver FlowDeriver, flowRolluper FlowRolluper) AggregationService {
	return &aggregationService{flowDeriver: flowDeriver, flowRolluper: flowRolluper}
}

func (s *aggregationService) Aggregate(ctx context.Context, records []*models.FlowRecord) (*models.AggregatedTable, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Int(loggers.FieldRowCount, len(records)).Msg("started aggregating flows")

	groups := make(map[models.AggregateKey]*models.AggregatedRow)
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		flow, err := s.flowDeriver.Derive(record)
		if err != nil {
			s.countFailure(err)
			return nil, err
		}

		key := flow.Key()
		row, exists := groups[key]
		if !exists {
			row = models.NewEmptyAggregatedRow(key)
			groups[key] = row
		}
		if row.IsNewAggregate() {
			metricGroupsCreatedTotal.WithLabelValues().Inc()
		}

		if err := s.flowRolluper.Rollup(row, flow); err != nil {
			svcErr := errInternalFlowRollupFailed(err)
			s.countFailure(svcErr)
			return nil, svcErr
		}
	}

	rows := make([]*models.AggregatedRow, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, row)
	}
	// Map iteration is random; sort for deterministic output.
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].AggregateKey.Less(rows[j].AggregateKey)
	})

	metricFlowsAggregatedTotal.WithLabelValues(metrics.ValueNoError).Add(float64(len(records)))
	logger.Debug().
		Int(loggers.FieldRowCount, len(records)).
		Int(loggers.FieldGroups, len(rows)).
		Msg("finished aggregating flows")

	return &models.AggregatedTable{Rows: rows}, nil
}

func (s *aggregationService) countFailure(err error) {
	code := svcerrors.NewInternalErrorUndefined(err).Code
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricFlowsAggregatedTotal.WithLabelValues(code).Inc()
}
