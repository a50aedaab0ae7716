package ingestors

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"flow-aggregator/internal/models"
	"flow-aggregator/internal/shared/loggers"
	"flow-aggregator/internal/shared/metrics"
	"flow-aggregator/internal/shared/svcerrors"
)

const utf8BOM = "\ufeff"

var errIsDirectory = errors.New("is a directory")

//go:generate mockgen -source=dataset_loader.go -destination=./mocks/dataset_loader_mock.go -package=mocks
type DatasetLoader interface {
	// Load reads the whole dataset at path into memory, keeping only the allowlisted columns.
	Load(ctx context.Context, path string) ([]*models.FlowRecord, error)
}

type datasetLoader struct{}

func NewDatasetLoader() DatasetLoader {
	return &datasetLoader{}
}

func (l *datasetLoader) Load(ctx context.Context, path string) ([]*models.FlowRecord, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldDataset, path).Msg("started loading dataset")

	f, err := os.Open(path)
	if err != nil {
		return nil, errDatasetNotAccessible(path, err)
	}
	defer f.Close()

	records, err := l.read(ctx, f)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			metricRowsLoadedTotal.WithLabelValues(svcErr.Code).Inc()
		}
		return nil, err
	}

	metricRowsLoadedTotal.WithLabelValues(metrics.ValueNoError).Add(float64(len(records)))
	logger.Debug().Str(loggers.FieldDataset, path).Int(loggers.FieldRowCount, len(records)).Msg("finished loading dataset")
	return records, nil
}

func (l *datasetLoader) read(ctx context.Context, r io.Reader) ([]*models.FlowRecord, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errSchemaMismatch("dataset is empty: header row missing")
		}
		return nil, errMalformedCSV(err)
	}

	index, err := l.indexColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]*models.FlowRecord, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errMalformedCSV(err)
		}

		line, _ := reader.FieldPos(0)
		record, err := l.toFlowRecord(row, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// indexColumns maps every required column to its position in header.
// The first occurrence wins when a column name is repeated.
func (l *datasetLoader) indexColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if _, ok := positions[name]; !ok {
			positions[name] = i
		}
	}

	index := make(map[string]int, len(models.RequiredInputColumns))
	var missing []string
	for _, name := range models.RequiredInputColumns {
		pos, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		index[name] = pos
	}
	if len(missing) > 0 {
		return nil, errSchemaMismatch(fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}
	return index, nil
}

func (l *datasetLoader) toFlowRecord(row []string, index map[string]int, line int) (*models.FlowRecord, error) {
	record := &models.FlowRecord{
		Line:          line,
		ProtocolName:  row[index[models.InputColumnProtocolName]],
		Timestamp:     row[index[models.InputColumnTimestamp]],
		DestinationIP: row[index[models.InputColumnDestination]],
	}

	counters := []struct {
		column string
		dst    *int64
	}{
		{models.InputColumnFwdPackets, &record.FwdPackets},
		{models.InputColumnBwdPackets, &record.BwdPackets},
		{models.InputColumnFwdBytes, &record.FwdBytes},
		{models.InputColumnBwdBytes, &record.BwdBytes},
	}
	for _, counter := range counters {
		value := row[index[counter.column]]
		n, err := parseCount(value)
		if err != nil {
			return nil, errInvalidCounter(line, counter.column, value, err)
		}
		*counter.dst = n
	}

	return record, nil
}

// parseCount parses an integer counter. Integral float text such as "12.0" is accepted.
func parseCount(value string) (int64, error) {
	value = strings.TrimSpace(value)
	n, err := strconv.ParseInt(value, 10, 64)
	if err == nil {
		return n, nil
	}

	f, ferr := strconv.ParseFloat(value, 64)
	if ferr != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%q is not an integer", value)
	}
	return int64(f), nil
}
