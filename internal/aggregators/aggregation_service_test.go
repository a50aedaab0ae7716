package aggregators_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"flow-aggregator/internal/aggregators"
	aggregatormocks "flow-aggregator/internal/aggregators/mocks"
	"flow-aggregator/internal/models"
	"flow-aggregator/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService() aggregators.AggregationService {
	return aggregators.NewAggregationService(aggregators.NewFlowDeriver(), aggregators.NewFlowRolluper())
}

func flowRecord(protocol, timestamp, ip string, fwdPkts, bwdPkts, fwdBytes, bwdBytes int64) *models.FlowRecord {
	return &models.FlowRecord{
		ProtocolName:  protocol,
		Timestamp:     timestamp,
		DestinationIP: ip,
		FwdPackets:    fwdPkts,
		BwdPackets:    bwdPkts,
		FwdBytes:      fwdBytes,
		BwdBytes:      bwdBytes,
	}
}

func TestAggregate_TwoFlowsSameKey(t *testing.T) {
	t.Parallel()

	records := []*models.FlowRecord{
		flowRecord("TCP", "01/01/202000:00:00", "1.1.1.1", 2, 3, 100, 200),
		flowRecord("TCP", "01/01/202000:00:00", "1.1.1.1", 1, 1, 50, 50),
	}

	table, err := newService().Aggregate(context.Background(), records)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	row := table.Rows[0]
	assert.Equal(t, []string{"20200101 00 (Wednesday)", "TCP", "1.1.1.1", "7", "400"}, row.Record())
	assert.Equal(t, int64(2), row.FlowCount)
}

func TestAggregate_GroupsByBucketProtocolAndDestination(t *testing.T) {
	t.Parallel()

	records := []*models.FlowRecord{
		flowRecord("TCP", "01/01/202000:10:00", "1.1.1.1", 1, 0, 10, 0),
		flowRecord("TCP", "01/01/202000:59:59", "1.1.1.1", 1, 0, 10, 0), // same hour
		flowRecord("TCP", "01/01/202001:00:00", "1.1.1.1", 1, 0, 10, 0), // next hour
		flowRecord("UDP", "01/01/202000:10:00", "1.1.1.1", 1, 0, 10, 0), // other protocol
		flowRecord("TCP", "01/01/202000:10:00", "2.2.2.2", 1, 0, 10, 0), // other destination
	}

	table, err := newService().Aggregate(context.Background(), records)
	require.NoError(t, err)

	got := make(map[models.AggregateKey][2]int64)
	for _, row := range table.Rows {
		got[row.AggregateKey] = [2]int64{row.TotalPackets, row.TotalBytes}
	}
	assert.Equal(t, map[models.AggregateKey][2]int64{
		{Bucket: "20200101 00 (Wednesday)", ProtocolName: "TCP", DestinationIP: "1.1.1.1"}: {2, 20},
		{Bucket: "20200101 01 (Wednesday)", ProtocolName: "TCP", DestinationIP: "1.1.1.1"}: {1, 10},
		{Bucket: "20200101 00 (Wednesday)", ProtocolName: "UDP", DestinationIP: "1.1.1.1"}: {1, 10},
		{Bucket: "20200101 00 (Wednesday)", ProtocolName: "TCP", DestinationIP: "2.2.2.2"}: {1, 10},
	}, got)
}

func TestAggregate_RowsSortedByKey(t *testing.T) {
	t.Parallel()

	records := []*models.FlowRecord{
		flowRecord("UDP", "02/01/202005:00:00", "9.9.9.9", 1, 1, 1, 1),
		flowRecord("TCP", "01/01/202000:00:00", "2.2.2.2", 1, 1, 1, 1),
		flowRecord("TCP", "01/01/202000:00:00", "1.1.1.1", 1, 1, 1, 1),
		flowRecord("DNS", "01/01/202000:00:00", "8.8.8.8", 1, 1, 1, 1),
	}

	table, err := newService().Aggregate(context.Background(), records)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	for i := 1; i < table.Len(); i++ {
		assert.True(t, table.Rows[i-1].AggregateKey.Less(table.Rows[i].AggregateKey), "row %d out of order", i)
	}
	assert.Equal(t, "DNS", table.Rows[0].ProtocolName)
	assert.Equal(t, "20200102 05 (Thursday)", table.Rows[3].Bucket)
}

func TestAggregate_ConservesTotalsAndKeys(t *testing.T) {
	t.Parallel()

	protocols := []string{"TCP", "UDP", "DNS", "HTTP"}
	ips := []string{"1.1.1.1", "8.8.8.8", "10.0.0.1"}

	var records []*models.FlowRecord
	var wantPackets, wantBytes int64
	wantKeys := make(map[models.AggregateKey]struct{})
	for i := 0; i < 500; i++ {
		hour := i % 7
		record := flowRecord(
			protocols[i%len(protocols)],
			fmt.Sprintf("%02d/04/2017%02d:%02d:00", 20+i%3, hour, i%60),
			ips[i%len(ips)],
			int64(i), int64(i%11), int64(i*40), int64(i%13*7),
		)
		records = append(records, record)
		wantPackets += record.FwdPackets + record.BwdPackets
		wantBytes += record.FwdBytes + record.BwdBytes

		ts, err := models.ParseFlowTimestamp(record.Timestamp)
		require.NoError(t, err)
		wantKeys[models.AggregateKey{
			Bucket:        models.FormatHourBucket(ts),
			ProtocolName:  record.ProtocolName,
			DestinationIP: record.DestinationIP,
		}] = struct{}{}
	}

	table, err := newService().Aggregate(context.Background(), records)
	require.NoError(t, err)

	packets, bytes := table.Totals()
	assert.Equal(t, wantPackets, packets)
	assert.Equal(t, wantBytes, bytes)

	gotKeys := make(map[models.AggregateKey]struct{})
	var flows int64
	for _, row := range table.Rows {
		_, dup := gotKeys[row.AggregateKey]
		assert.False(t, dup, "duplicate key %v", row.AggregateKey)
		gotKeys[row.AggregateKey] = struct{}{}
		flows += row.FlowCount
	}
	assert.Equal(t, wantKeys, gotKeys)
	assert.Equal(t, int64(len(records)), flows)

	// Input order does not matter.
	reversed := make([]*models.FlowRecord, len(records))
	for i, record := range records {
		reversed[len(records)-1-i] = record
	}
	again, err := newService().Aggregate(context.Background(), reversed)
	require.NoError(t, err)
	assert.Equal(t, table.Rows, again.Rows)
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	table, err := newService().Aggregate(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
}

func TestAggregate_ErrParse_StopsWholeRun(t *testing.T) {
	t.Parallel()

	records := []*models.FlowRecord{
		flowRecord("TCP", "01/01/202000:00:00", "1.1.1.1", 1, 1, 1, 1),
		{Line: 3, ProtocolName: "TCP", Timestamp: "yesterday", DestinationIP: "1.1.1.1"},
	}

	table, err := newService().Aggregate(context.Background(), records)
	assert.Nil(t, table)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_1000", svcErr.Code)
	assert.Equal(t, "parse", svcErr.Category)
}

func TestAggregate_ErrInternal_RollupFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flowRolluper := aggregatormocks.NewMockFlowRolluper(ctrl)
	service := aggregators.NewAggregationService(aggregators.NewFlowDeriver(), flowRolluper)

	flowRolluper.EXPECT().
		Rollup(gomock.Any(), gomock.Any()).
		Return(errors.New("boom"))

	records := []*models.FlowRecord{flowRecord("TCP", "01/01/202000:00:00", "1.1.1.1", 1, 1, 1, 1)}
	table, err := service.Aggregate(context.Background(), records)

	assert.Nil(t, table)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_9000", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
	assert.Contains(t, svcErr.Cause.Error(), "boom")
}

func TestAggregate_UsesDeriverOutput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	flowDeriver := aggregatormocks.NewMockFlowDeriver(ctrl)
	service := aggregators.NewAggregationService(flowDeriver, aggregators.NewFlowRolluper())

	record := flowRecord("TCP", "ignored", "1.1.1.1", 0, 0, 0, 0)
	flowDeriver.EXPECT().
		Derive(record).
		Return(&models.DerivedFlow{Bucket: "b", ProtocolName: "TCP", DestinationIP: "1.1.1.1", TotalPackets: 9, TotalBytes: 99}, nil).
		Times(2)

	table, err := service.Aggregate(context.Background(), []*models.FlowRecord{record, record})
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, int64(18), table.Rows[0].TotalPackets)
	assert.Equal(t, int64(198), table.Rows[0].TotalBytes)
}
