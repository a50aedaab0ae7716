package models

// AggregatedTable holds one row per distinct AggregateKey, sorted by key.
//
// Example (two TCP flows to 1.1.1.1 in the same hour):
//
//	DateHourBucket,ProtocolName,DestinationIP,TotalPackets,TotalBytes
//	20200101 00 (Wednesday),TCP,1.1.1.1,7,400
type AggregatedTable struct {
	Rows []*AggregatedRow
}

// Partition is the subset of table rows sharing one value of a column. It becomes one output file.
type Partition struct {
	Column Column
	Value  string
	Rows   []*AggregatedRow
}

func (t *AggregatedTable) Len() int {
	return len(t.Rows)
}

// DistinctValues returns the distinct values of column c in order of first appearance.
func (t *AggregatedTable) DistinctValues(c Column) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, row := range t.Rows {
		v := row.Value(c)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}

// Select returns the rows whose column c equals value exactly.
func (t *AggregatedTable) Select(c Column, value string) []*AggregatedRow {
	rows := make([]*AggregatedRow, 0)
	for _, row := range t.Rows {
		if row.Value(c) == value {
			rows = append(rows, row)
		}
	}
	return rows
}

// Partitions splits the table by column c, one partition per distinct value.
func (t *AggregatedTable) Partitions(c Column) []*Partition {
	values := t.DistinctValues(c)
	partitions := make([]*Partition, 0, len(values))
	for _, v := range values {
		partitions = append(partitions, &Partition{
			Column: c,
			Value:  v,
			Rows:   t.Select(c, v),
		})
	}
	return partitions
}

// Totals returns the packet and byte sums over all rows.
func (t *AggregatedTable) Totals() (packets int64, bytes int64) {
	for _, row := range t.Rows {
		packets += row.TotalPackets
		bytes += row.TotalBytes
	}
	return packets, bytes
}
