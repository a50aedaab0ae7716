package app

import (
	"context"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"flow-aggregator/internal/aggregators"
	"flow-aggregator/internal/exporters"
	"flow-aggregator/internal/ingestors"
	"flow-aggregator/internal/models"
	"flow-aggregator/internal/shared/configs"
	"flow-aggregator/internal/shared/filestorages"
	"flow-aggregator/internal/shared/loggers"
	"flow-aggregator/internal/shared/metrics"
	"flow-aggregator/internal/shared/svcerrors"
	"flow-aggregator/internal/shared/ulid"
	"flow-aggregator/internal/stores"
)

const appName = "flow-aggregator"

// App holds all dependencies of one run.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	runID     string
	startedAt time.Time

	datasetValidator   ingestors.DatasetValidator
	datasetLoader      ingestors.DatasetLoader
	aggregationService aggregators.AggregationService
	partitionedWriter  exporters.PartitionedWriter
}

// New wires the pipeline described by config. startedAt is the process start time used for the
// reported execution time; logs are written to logOutput.
func New(config *configs.Config, startedAt time.Time, logOutput io.Writer) (*App, error) {
	appLogger, err := loggers.New(logOutput, config.Log.EffectiveLogLevel(), config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	runID := ulid.NewRunID()
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Str(loggers.FieldRunID, runID).
		Logger()

	// Initialize file storage
	fileStorage, err := filestorages.NewFileStorage(config.Output.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	partitionColumn, err := models.ParsePartitionColumn(config.Output.PartitionColumn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize partition column: %w", err)
	}

	// Initialize pipeline stages
	datasetValidator := ingestors.NewDatasetValidator()
	datasetLoader := ingestors.NewDatasetLoader()
	aggregationService := aggregators.NewAggregationService(aggregators.NewFlowDeriver(), aggregators.NewFlowRolluper())
	partitionStore := stores.NewPartitionStore(fileStorage, config.Output.Overwrite)
	partitionedWriter := exporters.NewPartitionedWriter(partitionStore, partitionColumn, config.Output.Dir)

	return &App{
		config:             config,
		appLogger:          appLogger,
		runID:              runID,
		startedAt:          startedAt,
		datasetValidator:   datasetValidator,
		datasetLoader:      datasetLoader,
		aggregationService: aggregationService,
		partitionedWriter:  partitionedWriter,
	}, nil
}

// RunID returns the id attached to every log line of this run.
func (app *App) RunID() string {
	return app.runID
}

// Run executes validate, load, aggregate and write. Any failure is returned as a
// *svcerrors.ServiceError.
func (app *App) Run(ctx context.Context) (report *RunReport, err error) {
	ctx = app.appLogger.WithContext(ctx)
	logger := loggers.Ctx(ctx)

	logger.Info().
		Str(loggers.FieldDataset, app.config.Dataset.Path).
		Str(loggers.FieldOutputDir, app.config.Output.Dir).
		Msgf("starting %s (log_level=%s, partition_column=%s)",
			appName, app.config.Log.EffectiveLogLevel(), app.config.Output.PartitionColumn)

	defer func() {
		if p := recover(); p != nil {
			logger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("run panic recovered: %v", p)

			var panicErr error
			if e, ok := p.(error); ok {
				panicErr = e
			} else {
				panicErr = fmt.Errorf("%v", p)
			}
			report, err = nil, svcerrors.NewInternalErrorPanic(panicErr)
		}
		app.finish(ctx, err)
	}()

	report, err = app.run(ctx)
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		return nil, svcErr
	}

	if path := app.config.Report.Path; path != "" {
		if err := report.WriteYAML(path); err != nil {
			logger.Warn().Err(err).Msgf("failed to write run report %q", path)
		}
	}
	return report, nil
}

func (app *App) run(ctx context.Context) (*RunReport, error) {
	datasetPath := app.config.Dataset.Path

	if err := app.datasetValidator.Validate(datasetPath); err != nil {
		return nil, err
	}

	records, err := app.datasetLoader.Load(withComponent(ctx, "ingestor"), datasetPath)
	if err != nil {
		return nil, err
	}

	table, err := app.aggregationService.Aggregate(withComponent(ctx, "aggregator"), records)
	if err != nil {
		return nil, err
	}
	packets, byteCount := table.Totals()
	loggers.Ctx(ctx).Debug().
		Int(loggers.FieldGroups, table.Len()).
		Int64(loggers.FieldPackets, packets).
		Int64(loggers.FieldBytes, byteCount).
		Msg("aggregated table built")

	writeReport, err := app.partitionedWriter.Write(withComponent(ctx, "exporter"), table)
	if err != nil {
		return nil, err
	}

	return &RunReport{
		RunID:        app.runID,
		DatasetPath:  datasetPath,
		OutputDir:    app.config.Output.Dir,
		RowsLoaded:   len(records),
		GroupCount:   table.Len(),
		TotalPackets: packets,
		TotalBytes:   byteCount,
		FilesWritten: writeReport.FilesWritten,
		Files:        writeReport.Files,
		Elapsed:      time.Since(app.startedAt),
	}, nil
}

// withComponent returns ctx carrying the run logger tagged with component.
func withComponent(ctx context.Context, component string) context.Context {
	return loggers.Ctx(ctx).With().Str(loggers.FieldComponent, component).Logger().WithContext(ctx)
}

// finish records the run outcome in logs and metrics.
func (app *App) finish(ctx context.Context, err error) {
	logger := loggers.Ctx(ctx)
	elapsed := time.Since(app.startedAt)

	code := metrics.ValueNoError
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
		event := logger.Error()
		if !svcErr.IsInternalError() {
			event = logger.Warn()
		}
		event.Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Int64(loggers.FieldDuration, elapsed.Milliseconds()).
			Msg(svcErr.Message)
	} else {
		logger.Info().
			Int64(loggers.FieldDuration, elapsed.Milliseconds()).
			Msg("run completed")
	}
	metricRunDurationSeconds.WithLabelValues(code).Observe(elapsed.Seconds())

	if path := app.config.Metrics.TextfilePath; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			logger.Warn().Err(err).Msgf("failed to write metrics textfile %q", path)
		}
	}
}
