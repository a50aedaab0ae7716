package aggregators

import (
	"flow-aggregator/internal/models"
)

//go:generate mockgen -source=flow_deriver.go -destination=./mocks/flow_deriver_mock.go -package=mocks
type FlowDeriver interface {
	// Derive buckets the timestamp of record and totals its forward and backward counters.
	Derive(record *models.FlowRecord) (*models.DerivedFlow, error)
}

type flowDeriver struct{}

func NewFlowDeriver() FlowDeriver {
	return &flowDeriver{}
}

func (d *flowDeriver) Derive(record *models.FlowRecord) (*models.DerivedFlow, error) {
	timestamp, err := models.ParseFlowTimestamp(record.Timestamp)
	if err != nil {
		return nil, errInvalidTimestamp(record.Line, record.Timestamp, err)
	}

	totalPackets, err := addInt64(record.FwdPackets, record.BwdPackets)
	if err != nil {
		return nil, errInternalFlowDeriveFailed(err)
	}
	totalBytes, err := addInt64(record.FwdBytes, record.BwdBytes)
	if err != nil {
		return nil, errInternalFlowDeriveFailed(err)
	}

	return &models.DerivedFlow{
		Bucket:        models.FormatHourBucket(timestamp),
		ProtocolName:  record.ProtocolName,
		DestinationIP: record.DestinationIP,
		TotalPackets:  totalPackets,
		TotalBytes:    totalBytes,
	}, nil
}
