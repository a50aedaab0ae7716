package models

import "fmt"

// Input columns read from the dataset. Every other column is ignored.
const (
	InputColumnProtocolName = "ProtocolName"
	InputColumnTimestamp    = "Timestamp"
	InputColumnDestination  = "Destination.IP"
	InputColumnFwdBytes     = "Total.Length.of.Fwd.Packets"
	InputColumnFwdPackets   = "Total.Fwd.Packets"
	InputColumnBwdBytes     = "Total.Length.of.Bwd.Packets"
	InputColumnBwdPackets   = "Total.Backward.Packets"
)

// RequiredInputColumns is the dataset column allowlist.
var RequiredInputColumns = []string{
	InputColumnProtocolName,
	InputColumnTimestamp,
	InputColumnDestination,
	InputColumnFwdBytes,
	InputColumnFwdPackets,
	InputColumnBwdBytes,
	InputColumnBwdPackets,
}

// Column names a column of the aggregated table.
type Column string

const (
	ColumnDateHourBucket Column = "DateHourBucket"
	ColumnProtocolName   Column = "ProtocolName"
	ColumnDestinationIP  Column = "DestinationIP"
	ColumnTotalPackets   Column = "TotalPackets"
	ColumnTotalBytes     Column = "TotalBytes"
)

// OutputColumns is the header of every output file, key columns first.
var OutputColumns = []Column{
	ColumnDateHourBucket,
	ColumnProtocolName,
	ColumnDestinationIP,
	ColumnTotalPackets,
	ColumnTotalBytes,
}

// IsKey reports whether c is one of the grouping key columns.
func (c Column) IsKey() bool {
	switch c {
	case ColumnDateHourBucket, ColumnProtocolName, ColumnDestinationIP:
		return true
	}
	return false
}

// ParsePartitionColumn returns the key column named name.
func ParsePartitionColumn(name string) (Column, error) {
	c := Column(name)
	if !c.IsKey() {
		return "", fmt.Errorf("invalid partition column %q: must be one of %s, %s, %s",
			name, ColumnDateHourBucket, ColumnProtocolName, ColumnDestinationIP)
	}
	return c, nil
}

// OutputHeader returns the output header as strings.
func OutputHeader() []string {
	header := make([]string, len(OutputColumns))
	for i, c := range OutputColumns {
		header[i] = string(c)
	}
	return header
}
