package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalEntries = 64000 // Total number of flows to generate
)

var (
	hours        = []string{"18:03", "19:14", "20:25", "21:36"}
	protocols    = []string{"TCP", "UDP", "DNS", "HTTP"}
	destinations = []string{"1.1.1.1", "8.8.8.8", "10.0.0.1", "192.168.1.20"}
)

// ### End - fixed configs

const datasetHeader = "Flow.ID,Source.IP,Source.Port,Destination.IP,Destination.Port,Timestamp,Flow.Duration," +
	"Total.Fwd.Packets,Total.Backward.Packets,Total.Length.of.Fwd.Packets,Total.Length.of.Bwd.Packets,ProtocolName"

type entry struct {
	bucket int
	round  int
}

type totals struct {
	packets int64
	bytes   int64
}

// main runs the e2e scenario: 001_basic_hour_rollup
//
// This scenario generates a dataset of 64,000 flows spread over four hours, four protocols and
// four destinations, runs the flowagg CLI on it twice and checks the partitioned output.
//
// What it tests:
//   - Column projection with extra, unused dataset columns
//   - Hour bucketing of second-resolution timestamps
//   - Group-by summation of forward and backward counters
//   - One output file per hour bucket
//   - Re-running over the same output directory yields identical files
//
// Expected results:
//   - Four files named "<yyyymmdd> <HH> (<Weekday>).csv"
//   - Each file holds 16 rows (4 protocols x 4 destinations)
//   - Packet and byte totals match the generated flows
func main() {
	// these configs can be changed to run the scenario
	flowaggCmd := getEnv("FLOWAGG_CMD", "go run ./cmd/flowagg") // Command used to run the CLI, from project root
	date := getEnv("DATE", "28/12/2025")                         // Date of generated timestamps (dd/mm/yyyy)
	workDir := getEnv("WORK_DIR", ".tmp/e2e-hour-rollup")        // Scratch directory relative to project root
	runs := getEnvInt("RUNS", 2)                                 // Number of CLI runs over the same output directory
	wantCleanWorkDir := getEnvBool("WANT_CLEAN_WORK_DIR", true)  // If true, clean up the scratch directory first

	projectRoot, err := findProjectRoot()
	if err != nil {
		fatalf("%v", err)
	}

	workPath, err := filepath.Abs(filepath.Join(projectRoot, workDir))
	if err != nil {
		fatalf("Failed to resolve work directory: %v", err)
	}
	datasetPath := filepath.Join(workPath, "flows.csv")
	outputPath := filepath.Join(workPath, "AgregatedResults")

	if wantCleanWorkDir {
		fmt.Printf("Cleaning work directory: %s\n", workPath)
		if err := os.RemoveAll(workPath); err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to clean work directory: %v\n", err)
		}
		fmt.Println()
	}
	if err := os.MkdirAll(workPath, 0755); err != nil {
		fatalf("Failed to create work directory: %v", err)
	}

	fmt.Println("Starting e2e scenario: 001_basic_hour_rollup")
	fmt.Printf("FLOWAGG_CMD: %s\n", flowaggCmd)
	fmt.Printf("DATE: %s\n", date)
	fmt.Printf("WORK_PATH: %s\n", workPath)
	fmt.Printf("RUNS: %d\n", runs)
	fmt.Printf("TOTAL_ENTRIES: %d\n", totalEntries)
	fmt.Println()

	fmt.Printf("Generating %d flows...\n", totalEntries)
	dataset, expected := generateDataset(date)
	if err := os.WriteFile(datasetPath, dataset, 0644); err != nil {
		fatalf("Failed to write dataset: %v", err)
	}
	fmt.Printf("Dataset written to %s\n", datasetPath)
	fmt.Println()

	var previous map[string]map[string]totals
	for i := 1; i <= runs; i++ {
		if err := runFlowagg(projectRoot, flowaggCmd, datasetPath, outputPath); err != nil {
			fatalf("Run %d failed: %v", i, err)
		}

		got, err := readOutput(outputPath)
		if err != nil {
			fatalf("Run %d: failed to read output: %v", i, err)
		}
		if err := compare(expected, got); err != nil {
			fatalf("Run %d: %v", i, err)
		}
		if previous != nil && !reflect.DeepEqual(previous, got) {
			fatalf("Run %d: output differs from previous run", i)
		}
		previous = got
		fmt.Printf("Run %d verified (%d files)\n", i, len(got))
	}

	fmt.Println()
	fmt.Println("=== Statistics ===")
	files := make([]string, 0, len(previous))
	for name := range previous {
		files = append(files, name)
	}
	sort.Strings(files)
	for _, name := range files {
		var packets, byteCount int64
		for _, t := range previous[name] {
			packets += t.packets
			byteCount += t.bytes
		}
		fmt.Printf("%s: %d rows, %d packets, %d bytes\n", name, len(previous[name]), packets, byteCount)
	}
	fmt.Println("Scenario completed successfully")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for i := 0; i < 10; i++ {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("could not find go.mod, please run from project root")
}

func generateAllEntries() []entry {
	entries := make([]entry, 0, totalEntries)
	bucket := 0
	round := 0

	for count := 0; count < totalEntries; count++ {
		entries = append(entries, entry{bucket: bucket, round: round})

		bucket++
		if bucket >= 64 {
			bucket = 0
			round++
		}
	}

	return entries
}

// generateDataset returns the dataset and the expected output, keyed by file name then by
// "<protocol>,<destination>".
func generateDataset(date string) ([]byte, map[string]map[string]totals) {
	var buf bytes.Buffer
	buf.WriteString(datasetHeader + "\n")
	expected := make(map[string]map[string]totals)

	for i, e := range generateAllEntries() {
		hourIndex := e.bucket / 16
		combo := e.bucket % 16
		protocol := protocols[combo/4]
		destination := destinations[combo%4]

		hhmm := hours[hourIndex]
		seconds := e.round % 60
		timestamp := fmt.Sprintf("%s%s:%02d", date, hhmm, seconds)

		fwdPackets := int64(1 + e.round%3)
		bwdPackets := int64(e.round % 2)
		fwdBytes := fwdPackets * int64(40+e.bucket)
		bwdBytes := bwdPackets * 1500

		fmt.Fprintf(&buf, "flow-%d,172.16.0.%d,%d,%s,443,%s,%d,%d,%d,%d,%d,%s\n",
			i, e.bucket, 40000+e.round, destination, timestamp, e.round*10,
			fwdPackets, bwdPackets, fwdBytes, bwdBytes, protocol)

		file := hourFileName(date, hhmm)
		if expected[file] == nil {
			expected[file] = make(map[string]totals)
		}
		key := protocol + "," + destination
		t := expected[file][key]
		t.packets += fwdPackets + bwdPackets
		t.bytes += fwdBytes + bwdBytes
		expected[file][key] = t
	}

	return buf.Bytes(), expected
}

func hourFileName(date, hhmm string) string {
	parts := strings.Split(date, "/")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	weekday := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
	return fmt.Sprintf("%04d%02d%02d %s (%s).csv", year, month, day, hhmm[:2], weekday)
}

func runFlowagg(projectRoot, flowaggCmd, datasetPath, outputPath string) error {
	fields := strings.Fields(flowaggCmd)
	args := append(fields[1:], "--dataset", datasetPath, "--outputdir", outputPath)
	cmd := exec.Command(fields[0], args...)
	cmd.Dir = projectRoot
	cmd.Stderr = os.Stderr

	stdout, err := cmd.Output()
	if err != nil {
		return err
	}
	fmt.Print(string(stdout))
	return nil
}

func readOutput(outputPath string) (map[string]map[string]totals, error) {
	entries, err := os.ReadDir(outputPath)
	if err != nil {
		return nil, err
	}

	got := make(map[string]map[string]totals)
	for _, dirEntry := range entries {
		f, err := os.Open(filepath.Join(outputPath, dirEntry.Name()))
		if err != nil {
			return nil, err
		}
		records, err := csv.NewReader(f).ReadAll()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", dirEntry.Name(), err)
		}

		rows := make(map[string]totals)
		for _, record := range records[1:] {
			packets, err := strconv.ParseInt(record[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", dirEntry.Name(), err)
			}
			byteCount, err := strconv.ParseInt(record[4], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", dirEntry.Name(), err)
			}
			rows[record[1]+","+record[2]] = totals{packets: packets, bytes: byteCount}
		}
		got[dirEntry.Name()] = rows
	}
	return got, nil
}

func compare(expected, got map[string]map[string]totals) error {
	if len(expected) != len(got) {
		return fmt.Errorf("expected %d files, got %d", len(expected), len(got))
	}
	for file, wantRows := range expected {
		gotRows, ok := got[file]
		if !ok {
			return fmt.Errorf("missing file %q", file)
		}
		if !reflect.DeepEqual(wantRows, gotRows) {
			return fmt.Errorf("%s: rows differ: want %v, got %v", file, wantRows, gotRows)
		}
	}
	return nil
}
