package aggregators

import (
	"math"
	"testing"

	"flow-aggregator/internal/models"
	"flow-aggregator/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowDeriver_Derive(t *testing.T) {
	t.Parallel()

	record := &models.FlowRecord{
		Line:          2,
		ProtocolName:  "TCP",
		Timestamp:     "01/01/202000:42:10",
		DestinationIP: "1.1.1.1",
		FwdPackets:    2,
		BwdPackets:    3,
		FwdBytes:      100,
		BwdBytes:      200,
	}

	flow, err := NewFlowDeriver().Derive(record)
	require.NoError(t, err)
	assert.Equal(t, &models.DerivedFlow{
		Bucket:        "20200101 00 (Wednesday)",
		ProtocolName:  "TCP",
		DestinationIP: "1.1.1.1",
		TotalPackets:  5,
		TotalBytes:    300,
	}, flow)
	assert.Equal(t, testKey, flow.Key())
}

func TestFlowDeriver_Derive_ErrParse_InvalidTimestamp(t *testing.T) {
	t.Parallel()

	record := &models.FlowRecord{Line: 7, ProtocolName: "TCP", Timestamp: "2020-01-01 00:00:00"}

	_, err := NewFlowDeriver().Derive(record)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_1000", svcErr.Code)
	assert.Equal(t, "parse", svcErr.Category)
	assert.Contains(t, svcErr.Message, "line 7")
	assert.Contains(t, svcErr.Message, "2020-01-01 00:00:00")
}

func TestFlowDeriver_Derive_ErrOverflow(t *testing.T) {
	t.Parallel()

	record := &models.FlowRecord{
		Timestamp:  "01/01/202000:00:00",
		FwdPackets: math.MaxInt64,
		BwdPackets: 1,
	}

	_, err := NewFlowDeriver().Derive(record)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_9001", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
}
