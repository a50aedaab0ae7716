package aggregators

import (
	"errors"
	"fmt"
	"math"

	"flow-aggregator/internal/models"
)

var errInt64Overflow = errors.New("int64 overflow")

//go:generate mockgen -source=flow_rolluper.go -destination=./mocks/flow_rolluper_mock.go -package=mocks
type FlowRolluper interface {
	// Rollup mutates agg by accumulating the totals of flow.
	Rollup(agg *models.AggregatedRow, flow *models.DerivedFlow) error
}

type flowRolluper struct{}

func NewFlowRolluper() FlowRolluper {
	return &flowRolluper{}
}

func (r *flowRolluper) Rollup(agg *models.AggregatedRow, flow *models.DerivedFlow) error {
	// Validate that identity fields match
	if agg.Bucket != flow.Bucket {
		return fmt.Errorf("bucket mismatch: agg=%q, flow=%q", agg.Bucket, flow.Bucket)
	}
	if agg.ProtocolName != flow.ProtocolName {
		return fmt.Errorf("protocolName mismatch: agg=%q, flow=%q", agg.ProtocolName, flow.ProtocolName)
	}
	if agg.DestinationIP != flow.DestinationIP {
		return fmt.Errorf("destinationIP mismatch: agg=%q, flow=%q", agg.DestinationIP, flow.DestinationIP)
	}

	// Compute both sums before touching agg so a failure leaves it unchanged.
	packets, err := addInt64(agg.TotalPackets, flow.TotalPackets)
	if err != nil {
		return fmt.Errorf("totalPackets: %w", err)
	}
	bytes, err := addInt64(agg.TotalBytes, flow.TotalBytes)
	if err != nil {
		return fmt.Errorf("totalBytes: %w", err)
	}

	agg.TotalPackets = packets
	agg.TotalBytes = bytes
	agg.FlowCount++
	return nil
}

func addInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", errInt64Overflow, a, b)
	}
	return a + b, nil
}
