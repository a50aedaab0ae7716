package exporters

import (
	"context"
	"errors"
	"os"
	"strings"

	"flow-aggregator/internal/models"
	"flow-aggregator/internal/shared/loggers"
	"flow-aggregator/internal/shared/metrics"
	"flow-aggregator/internal/shared/svcerrors"
	"flow-aggregator/internal/stores"
)

// WriteReport lists the files produced by one Write, in partition order.
type WriteReport struct {
	FilesWritten int
	Files        []string
}

//go:generate mockgen -source=partitioned_writer.go -destination=./mocks/partitioned_writer_mock.go -package=mocks
type PartitionedWriter interface {
	// Write creates one file per distinct value of the partition column.
	Write(ctx context.Context, table *models.AggregatedTable) (*WriteReport, error)
}

type partitionedWriter struct {
	partitionStore stores.PartitionStore
	column         models.Column
	outputDir      string
}

// NewPartitionedWriter returns a writer splitting tables by column. outputDir is only used in
// error messages; partitionStore decides where files go.
func NewPartitionedWriter(partitionStore stores.PartitionStore, column models.Column, outputDir string) PartitionedWriter {
	return &partitionedWriter{partitionStore: partitionStore, column: column, outputDir: outputDir}
}

func (w *partitionedWriter) Write(ctx context.Context, table *models.AggregatedTable) (*WriteReport, error) {
	logger := loggers.Ctx(ctx)

	partitions := table.Partitions(w.column)
	for _, partition := range partitions {
		if !isValidFileStem(partition.Value) {
			svcErr := errInvalidPartitionValue(string(w.column), partition.Value)
			metricPartitionFilesWrittenTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
	}

	if err := w.partitionStore.Prepare(ctx); err != nil {
		svcErr := errOutputDirFailed(w.outputDir, err)
		metricPartitionFilesWrittenTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	report := &WriteReport{Files: make([]string, 0, len(partitions))}
	for _, partition := range partitions {
		path, err := w.partitionStore.Put(ctx, partition)
		if err != nil {
			svcErr := w.toServiceError(partition.Value, err)
			metricPartitionFilesWrittenTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}

		logger.Debug().
			Str(loggers.FieldPartition, partition.Value).
			Str(loggers.FieldFileKey, path).
			Int(loggers.FieldRowCount, len(partition.Rows)).
			Msg("partition written")
		metricPartitionFilesWrittenTotal.WithLabelValues(metrics.ValueNoError).Inc()

		report.Files = append(report.Files, path)
		report.FilesWritten++
	}

	return report, nil
}

func (w *partitionedWriter) toServiceError(value string, err error) *svcerrors.ServiceError {
	if errors.Is(err, stores.ErrPartitionAlreadyExists) {
		return errPartitionExists(value, err)
	}
	return errWriteFailed(value, err)
}

// isValidFileStem reports whether value can name a file directly inside the output directory.
func isValidFileStem(value string) bool {
	if value == "" || value == "." || value == ".." {
		return false
	}
	return !strings.ContainsAny(value, "/"+string(os.PathSeparator))
}
