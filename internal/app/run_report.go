package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RunReport describes a successful run.
type RunReport struct {
	RunID        string        `yaml:"run_id"`
	DatasetPath  string        `yaml:"dataset"`
	OutputDir    string        `yaml:"output_dir"`
	RowsLoaded   int           `yaml:"rows_loaded"`
	GroupCount   int           `yaml:"group_count"`
	TotalPackets int64         `yaml:"total_packets"`
	TotalBytes   int64         `yaml:"total_bytes"`
	FilesWritten int           `yaml:"files_written"`
	Files        []string      `yaml:"files"`
	Elapsed      time.Duration `yaml:"elapsed_ns"`
}

// Summary returns the two lines printed to the user at the end of a run:
//
//	Data were aggregated into 3 files in "AgregatedResults" folder.
//	Execution time: 0.42s
func (r *RunReport) Summary() string {
	return fmt.Sprintf("Data were aggregated into %d files in \"%s\" folder.\nExecution time: %.2fs",
		r.FilesWritten, r.OutputDir, r.Elapsed.Seconds())
}

// WriteYAML writes the report to path.
func (r *RunReport) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}
	return nil
}
