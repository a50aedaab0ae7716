package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable() *AggregatedTable {
	return &AggregatedTable{Rows: []*AggregatedRow{
		{AggregateKey: AggregateKey{Bucket: "20200101 00 (Wednesday)", ProtocolName: "DNS", DestinationIP: "8.8.8.8"}, TotalPackets: 2, TotalBytes: 120},
		{AggregateKey: AggregateKey{Bucket: "20200101 00 (Wednesday)", ProtocolName: "TCP", DestinationIP: "1.1.1.1"}, TotalPackets: 7, TotalBytes: 400},
		{AggregateKey: AggregateKey{Bucket: "20200101 01 (Wednesday)", ProtocolName: "TCP", DestinationIP: "1.1.1.1"}, TotalPackets: 3, TotalBytes: 90},
	}}
}

func TestAggregatedTable_DistinctValues(t *testing.T) {
	t.Parallel()

	table := newTestTable()
	assert.Equal(t, []string{"20200101 00 (Wednesday)", "20200101 01 (Wednesday)"}, table.DistinctValues(ColumnDateHourBucket))
	assert.Equal(t, []string{"DNS", "TCP"}, table.DistinctValues(ColumnProtocolName))
	assert.Empty(t, (&AggregatedTable{}).DistinctValues(ColumnDateHourBucket))
}

func TestAggregatedTable_Partitions(t *testing.T) {
	t.Parallel()

	table := newTestTable()
	partitions := table.Partitions(ColumnDateHourBucket)
	require.Len(t, partitions, 2)

	assert.Equal(t, "20200101 00 (Wednesday)", partitions[0].Value)
	assert.Equal(t, ColumnDateHourBucket, partitions[0].Column)
	assert.Len(t, partitions[0].Rows, 2)
	assert.Equal(t, "20200101 01 (Wednesday)", partitions[1].Value)
	assert.Len(t, partitions[1].Rows, 1)

	// Every row lands in exactly one partition.
	total := 0
	for _, p := range partitions {
		total += len(p.Rows)
	}
	assert.Equal(t, table.Len(), total)
}

func TestAggregatedTable_SelectIsExactMatch(t *testing.T) {
	t.Parallel()

	table := newTestTable()
	assert.Len(t, table.Select(ColumnProtocolName, "TCP"), 2)
	assert.Empty(t, table.Select(ColumnProtocolName, "tcp"))
	assert.Empty(t, table.Select(ColumnProtocolName, "TC"))
}

func TestAggregatedTable_Totals(t *testing.T) {
	t.Parallel()

	packets, bytes := newTestTable().Totals()
	assert.Equal(t, int64(12), packets)
	assert.Equal(t, int64(610), bytes)
}

func TestAggregatedRow_Record(t *testing.T) {
	t.Parallel()

	row := newTestTable().Rows[1]
	assert.Equal(t, []string{"20200101 00 (Wednesday)", "TCP", "1.1.1.1", "7", "400"}, row.Record())
	assert.Equal(t, []string{"DateHourBucket", "ProtocolName", "DestinationIP", "TotalPackets", "TotalBytes"}, OutputHeader())
}

func TestAggregateKey_Less(t *testing.T) {
	t.Parallel()

	a := AggregateKey{Bucket: "20200101 00 (Wednesday)", ProtocolName: "TCP", DestinationIP: "1.1.1.1"}
	b := AggregateKey{Bucket: "20200101 00 (Wednesday)", ProtocolName: "TCP", DestinationIP: "2.2.2.2"}
	c := AggregateKey{Bucket: "20200101 00 (Wednesday)", ProtocolName: "UDP", DestinationIP: "0.0.0.0"}
	d := AggregateKey{Bucket: "20200101 01 (Wednesday)", ProtocolName: "DNS", DestinationIP: "0.0.0.0"}

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, c.Less(d))
	assert.False(t, d.Less(a))
	assert.False(t, a.Less(a))
}

func TestParsePartitionColumn(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"DateHourBucket", "ProtocolName", "DestinationIP"} {
		c, err := ParsePartitionColumn(name)
		require.NoError(t, err)
		assert.Equal(t, Column(name), c)
	}

	for _, name := range []string{"TotalBytes", "TotalPackets", "", "datehourbucket"} {
		_, err := ParsePartitionColumn(name)
		assert.Error(t, err, name)
	}
}
