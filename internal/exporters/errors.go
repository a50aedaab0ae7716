package exporters

import (
	"fmt"

	"flow-aggregator/internal/shared/svcerrors"
)

const (
	codeInvalidPartitionValue = "EXP_1000"
	codePartitionExists       = "EXP_1001"

	codeOutputDirFailed = "EXP_9000"
	codeWriteFailed     = "EXP_9001"
)

// errInvalidPartitionValue returns an error when a partition value cannot be used as a file name.
func errInvalidPartitionValue(column, value string) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeInvalidPartitionValue,
		fmt.Sprintf("%s value %q cannot be used as a file name", column, value), nil)
}

func errPartitionExists(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codePartitionExists,
		fmt.Sprintf("output file for %q already exists", value), cause)
}

func errOutputDirFailed(dir string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeOutputDirFailed, fmt.Sprintf("cannot create output directory %q", dir), cause)
}

func errWriteFailed(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeWriteFailed, fmt.Sprintf("cannot write output file for %q", value), cause)
}
