package aggregators

import (
	"fmt"

	"flow-aggregator/internal/shared/svcerrors"
)

const (
	codeInvalidTimestamp = "AGG_1000"

	codeInternalFlowRollupFailed = "AGG_9000"
	codeInternalFlowDeriveFailed = "AGG_9001"
)

// errInvalidTimestamp returns an error when a flow timestamp cannot be parsed.
func errInvalidTimestamp(line int, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeInvalidTimestamp,
		fmt.Sprintf("line %d: invalid timestamp %q: expected dd/mm/yyyyHH:MM:SS", line, value), cause)
}

// errInternalFlowRollupFailed returns an error when a derived flow cannot be rolled up.
func errInternalFlowRollupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalFlowRollupFailed, fmt.Errorf("flowRollupFailed: %w", cause))
}

// errInternalFlowDeriveFailed returns an error when the totals of a flow cannot be computed.
func errInternalFlowDeriveFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalFlowDeriveFailed, fmt.Errorf("flowDeriveFailed: %w", cause))
}
