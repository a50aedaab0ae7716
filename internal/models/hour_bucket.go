package models

import (
	"time"
)

const (
	// TimestampLayout reads day/month/year immediately followed by HH:MM:SS, e.g. 01/01/202000:00:00.
	TimestampLayout = "2/1/200615:04:05"
	// HourBucketLayout formats e.g. "20200101 00 (Wednesday)".
	HourBucketLayout = "20060102 15 (Monday)"
)

// ParseFlowTimestamp parses a raw flow timestamp. The value has no zone and is kept as-is.
func ParseFlowTimestamp(value string) (time.Time, error) {
	return time.Parse(TimestampLayout, value)
}

// FormatHourBucket returns the hour bucket label for t, without any timezone conversion.
func FormatHourBucket(t time.Time) string {
	return t.Truncate(time.Hour).Format(HourBucketLayout)
}
