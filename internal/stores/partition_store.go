package stores

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"flow-aggregator/internal/models"
	"flow-aggregator/internal/shared/filestorages"
)

var ErrPartitionAlreadyExists = errors.New("partition file already exists")

const partitionFileExt = ".csv"

//go:generate mockgen -source=partition_store.go -destination=./mocks/partition_store_mock.go -package=mocks
type PartitionStore interface {
	// Prepare creates the output directory if missing.
	Prepare(ctx context.Context) error
	// Put writes one partition as "<value>.csv" and returns the written path.
	Put(ctx context.Context, partition *models.Partition) (string, error)
}

type partitionStore struct {
	fileStorage filestorages.FileStorage
	overwrite   bool
}

func NewPartitionStore(fileStorage filestorages.FileStorage, overwrite bool) PartitionStore {
	return &partitionStore{fileStorage: fileStorage, overwrite: overwrite}
}

func (s *partitionStore) Prepare(ctx context.Context) error {
	if err := s.fileStorage.EnsureRootDir(ctx); err != nil {
		return fmt.Errorf("failed to prepare output directory %q: %w", s.fileStorage.RootDir(), err)
	}
	return nil
}

func (s *partitionStore) Put(ctx context.Context, partition *models.Partition) (string, error) {
	data, err := encodePartition(partition)
	if err != nil {
		return "", fmt.Errorf("failed to encode partition %q: %w", partition.Value, err)
	}

	key := PartitionFileKey(partition.Value)
	result, err := s.fileStorage.Put(ctx, key, bytes.NewReader(data), filestorages.PutOptions{AllowOverwrite: s.overwrite})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return "", fmt.Errorf("%w: %s", ErrPartitionAlreadyExists, key)
		}
		return "", fmt.Errorf("failed to put partition %q: %w", partition.Value, err)
	}
	return result.Path, nil
}

// PartitionFileKey returns the file key of the partition holding value.
func PartitionFileKey(value string) string {
	return value + partitionFileExt
}

func encodePartition(partition *models.Partition) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(models.OutputHeader()); err != nil {
		return nil, err
	}
	for _, row := range partition.Rows {
		if err := w.Write(row.Record()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
