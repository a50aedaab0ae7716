package models

import (
	"strconv"
)

// AggregateKey is the grouping key of the aggregation.
type AggregateKey struct {
	Bucket        string
	ProtocolName  string
	DestinationIP string
}

// Less orders keys by bucket, then protocol, then destination.
func (k AggregateKey) Less(other AggregateKey) bool {
	if k.Bucket != other.Bucket {
		return k.Bucket < other.Bucket
	}
	if k.ProtocolName != other.ProtocolName {
		return k.ProtocolName < other.ProtocolName
	}
	return k.DestinationIP < other.DestinationIP
}

type AggregatedRow struct {
	AggregateKey
	TotalPackets int64
	TotalBytes   int64
	FlowCount    int64
}

func NewEmptyAggregatedRow(key AggregateKey) *AggregatedRow {
	return &AggregatedRow{AggregateKey: key}
}

func (r *AggregatedRow) IsNewAggregate() bool {
	return r.FlowCount == 0
}

// Value returns the cell of column c.
func (r *AggregatedRow) Value(c Column) string {
	switch c {
	case ColumnDateHourBucket:
		return r.Bucket
	case ColumnProtocolName:
		return r.ProtocolName
	case ColumnDestinationIP:
		return r.DestinationIP
	case ColumnTotalPackets:
		return strconv.FormatInt(r.TotalPackets, 10)
	case ColumnTotalBytes:
		return strconv.FormatInt(r.TotalBytes, 10)
	}
	return ""
}

// Record returns the row in OutputColumns order.
func (r *AggregatedRow) Record() []string {
	record := make([]string, len(OutputColumns))
	for i, c := range OutputColumns {
		record[i] = r.Value(c)
	}
	return record
}
