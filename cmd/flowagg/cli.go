package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"flow-aggregator/internal/app"
	"flow-aggregator/internal/shared/configs"
	"flow-aggregator/internal/shared/svcerrors"

	"github.com/spf13/pflag"
)

const codeInvalidArguments = "CLI_1000"

const usageHint = `Please use arguments to run the script properly or print "--help" to discover more informations.`

const helpText = `
------------------------ H E L P ------------------------
long argument   short argument  mandatory  description
---------------------------------------------------------
--help          -h              no         print this help and exit
--dataset       -d              yes        dataset path in csv format (f.e. 'data.csv')
--outputdir     -o              no         name of output folder (f.e. 'AgregatedResults')
--debugmode     -g              no         to turn on debug mode (default is debug off)
--config                        no         YAML configuration file
--metricsfile                   no         write Prometheus metrics to this file
--reportfile                    no         write a YAML run report to this file
---------------------------------------------------------
`

// cliOptions holds flags that drive the CLI itself rather than the pipeline.
type cliOptions struct {
	help       bool
	configPath string
}

func newFlagSet() (*pflag.FlagSet, *cliOptions) {
	opts := &cliOptions{}
	flags := pflag.NewFlagSet("flowagg", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	flags.StringP("dataset", "d", "", "dataset path in csv format")
	flags.StringP("outputdir", "o", configs.DefaultOutputDir, "name of output folder")
	flags.BoolP("debugmode", "g", false, "turn on debug mode")
	flags.String("metricsfile", "", "write Prometheus metrics to this file")
	flags.String("reportfile", "", "write a YAML run report to this file")
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.BoolVarP(&opts.help, "help", "h", false, "print help")

	return flags, opts
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, startedAt time.Time) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, usageHint)
		return svcerrors.ExitCodeUsage
	}

	flags, opts := newFlagSet()
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usageHint)
		return svcerrors.ExitCodeUsage
	}
	if opts.help {
		fmt.Fprint(stdout, helpText)
		return 0
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %v\n", flags.Args())
		fmt.Fprintln(stderr, usageHint)
		return svcerrors.ExitCodeUsage
	}

	config, err := configs.LoadConfig(opts.configPath, flags)
	if err != nil {
		return reportError(stderr, svcerrors.NewInvalidArgumentError(codeInvalidArguments, "invalid arguments", err))
	}

	application, err := app.New(config, startedAt, stderr)
	if err != nil {
		return reportError(stderr, svcerrors.NewInvalidArgumentError(codeInvalidArguments, "invalid arguments", err))
	}

	report, err := application.Run(context.Background())
	if err != nil {
		return reportError(stderr, err)
	}

	fmt.Fprintln(stdout, report.Summary())
	return 0
}

func reportError(stderr io.Writer, err error) int {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		svcErr = svcerrors.NewInternalErrorUndefined(err)
	}
	fmt.Fprintf(stderr, "Error: %s\n", svcErr.Describe())
	if svcErr.IsInvalidArgument() {
		fmt.Fprintln(stderr, usageHint)
	}
	return svcErr.ExitCode
}
