package ingestors

import (
	"fmt"

	"flow-aggregator/internal/shared/svcerrors"
)

const (
	codeDatasetNotCSV        = "ING_1000"
	codeDatasetNotAccessible = "ING_1001"
	codeSchemaMismatch       = "ING_1002"
	codeInvalidCounter       = "ING_1003"
	codeMalformedCSV         = "ING_1004"
)

// errDatasetNotCSV returns an error when the dataset path does not end in ".csv".
func errDatasetNotCSV(path string) *svcerrors.ServiceError {
	return svcerrors.NewFormatError(codeDatasetNotCSV, fmt.Sprintf("file %q not in \".csv\" format", path), nil)
}

// errDatasetNotAccessible returns an error when the dataset cannot be opened for reading.
func errDatasetNotAccessible(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewAccessError(codeDatasetNotAccessible, fmt.Sprintf("file %q not accessible", path), cause)
}

func errSchemaMismatch(msg string) *svcerrors.ServiceError {
	return svcerrors.NewSchemaError(codeSchemaMismatch, msg, nil)
}

func errInvalidCounter(line int, column string, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeInvalidCounter, fmt.Sprintf("line %d: column %q: invalid count %q", line, column, value), cause)
}

func errMalformedCSV(cause error) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeMalformedCSV, "malformed csv", cause)
}
