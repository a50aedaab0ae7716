package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldDataset   = "dataset"
	FieldOutputDir = "output_dir"
	FieldPartition = "partition"
	FieldFileKey   = "file_key"
	FieldRowCount  = "row_count"
	FieldGroups    = "group_count"
	FieldPackets   = "total_packets"
	FieldBytes     = "total_bytes"
)
