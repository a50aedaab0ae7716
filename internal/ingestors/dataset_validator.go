package ingestors

import (
	"os"
	"strings"
)

const datasetSuffix = ".csv"

//go:generate mockgen -source=dataset_validator.go -destination=./mocks/dataset_validator_mock.go -package=mocks
type DatasetValidator interface {
	// Validate checks that path names a readable ".csv" file. The file is not kept open.
	Validate(path string) error
}

type datasetValidator struct{}

func NewDatasetValidator() DatasetValidator {
	return &datasetValidator{}
}

func (v *datasetValidator) Validate(path string) error {
	// Suffix match is case-sensitive: "data.CSV" is rejected.
	if !strings.HasSuffix(path, datasetSuffix) {
		return errDatasetNotCSV(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return errDatasetNotAccessible(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errDatasetNotAccessible(path, err)
	}
	if info.IsDir() {
		return errDatasetNotAccessible(path, errIsDirectory)
	}
	return nil
}
