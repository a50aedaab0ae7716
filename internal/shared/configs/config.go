package configs

const (
	DefaultOutputDir       = "AgregatedResults"
	DefaultPartitionColumn = "DateHourBucket"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "console"
)

// Config holds all configuration for one run of the tool.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset" validate:"required"`
	Output  OutputConfig  `mapstructure:"output" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Report  ReportConfig  `mapstructure:"report"`
}

// DatasetConfig holds the input dataset configuration.
type DatasetConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// OutputConfig holds the partitioned output configuration.
type OutputConfig struct {
	Dir             string `mapstructure:"dir" validate:"required"`
	PartitionColumn string `mapstructure:"partition_column" validate:"required,oneof=DateHourBucket ProtocolName DestinationIP"`
	Overwrite       bool   `mapstructure:"overwrite"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,loglevel"`
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
	Debug  bool   `mapstructure:"debug"` // forces level=debug
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // empty disables the export
}

// EffectiveLogLevel returns the level the logger should run at.
func (c *LogConfig) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.Level
}

// ReportConfig holds the run report configuration.
type ReportConfig struct {
	Path string `mapstructure:"path"` // empty disables the report
}
