package configs

import (
	"fmt"
	"strings"

	"flow-aggregator/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "FLOWAGG"

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"dataset":     "dataset.path",
	"outputdir":   "output.dir",
	"debugmode":   "log.debug",
	"metricsfile": "metrics.textfile_path",
	"reportfile":  "report.path",
}

// LoadConfig builds the configuration from defaults, an optional YAML file, FLOWAGG_* environment
// variables and the changed flags of flags (in increasing priority), then validates it.
// configPath and flags may both be empty/nil.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	if flags != nil {
		for flagName, key := range flagKeys {
			flag := flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", flagName, err)
			}
		}
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset.path", "")
	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.partition_column", DefaultPartitionColumn)
	v.SetDefault("output.overwrite", true)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.debug", false)
	v.SetDefault("metrics.textfile_path", "")
	v.SetDefault("report.path", "")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "dataset.path")
	if e.StructNamespace() != "" {
		// Extract nested field path (e.g., "Config.Dataset.Path" -> "dataset.path")
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			// Skip "Config" prefix, convert to lowercase with dots
			fieldPath := strings.ToLower(strings.Join(parts[1:], "."))
			field = fieldPath
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	case "loglevel":
		msg = fmt.Sprintf("%s (unknown log level %q)", field, e.Value())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
