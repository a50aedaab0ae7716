package filestorages

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestEnsureRootDir_CreatesNestedDirectories(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "a", "b", "AgregatedResults")
	storage, err := NewFileStorage(root)
	require.NoError(t, err)

	require.NoError(t, storage.EnsureRootDir(context.Background()))
	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call on an existing directory succeeds.
	require.NoError(t, storage.EnsureRootDir(context.Background()))
}

func TestEnsureRootDir_FailsWhenPathIsAFile(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0644))

	storage, err := NewFileStorage(root)
	require.NoError(t, err)

	err = storage.EnsureRootDir(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create root directory")
}

func TestPut_ValidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"file.csv",
		"20200101 00 (Wednesday).csv",
		"nested/deep/path/file.csv",
		"file-with-dashes.csv",
		"file.with.dots.csv",
		"..leading-dots.csv",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "test data"
			reader := strings.NewReader(data)

			result, err := storage.Put(ctx, key, reader, PutOptions{AllowOverwrite: false})
			require.NoError(t, err, "key %q should be valid", key)
			assert.Equal(t, key, result.FileKey)

			// Verify file was created
			fullPath := filepath.Join(storage.RootDir(), key)
			assert.Equal(t, fullPath, result.Path)
			content, err := os.ReadFile(fullPath)
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestPut_FileIsWorldReadable(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	result, err := storage.Put(context.Background(), "perm.csv", strings.NewReader("a"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)

	info, err := os.Stat(result.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "test.csv"
	data := "initial data"

	// First put
	_, err := storage.Put(ctx, key, strings.NewReader(data), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	// Second put without overwrite
	_, err = storage.Put(ctx, key, strings.NewReader("new data"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	// Verify original data is unchanged
	content, err := os.ReadFile(filepath.Join(storage.RootDir(), key))
	require.NoError(t, err)
	assert.Equal(t, data, string(content))
}

func TestPut_AllowOverwriteTrue_FileExists(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	key := "test.csv"

	_, err := storage.Put(ctx, key, strings.NewReader("initial data"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)

	newData := "new data"
	result, err := storage.Put(ctx, key, strings.NewReader(newData), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	assert.Equal(t, key, result.FileKey)

	content, err := os.ReadFile(filepath.Join(storage.RootDir(), key))
	require.NoError(t, err)
	assert.Equal(t, newData, string(content))
}

func TestPut_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "a.csv", strings.NewReader("a"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)
	_, err = storage.Put(ctx, "b.csv", strings.NewReader("b"), PutOptions{AllowOverwrite: false})
	require.NoError(t, err)
	_, err = storage.Put(ctx, "b.csv", strings.NewReader("b"), PutOptions{AllowOverwrite: false})
	require.ErrorIs(t, err, ErrFileAlreadyExists)

	entries, err := os.ReadDir(storage.RootDir())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	assert.ElementsMatch(t, []string{"a.csv", "b.csv"}, names)
}

func TestPut_InvalidKey(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.csv",
		"../../etc/passwd",
		"batches/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Put(ctx, key, strings.NewReader("data"), PutOptions{AllowOverwrite: false})
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q should be invalid", key)
		})
	}
}

func TestEnsureRootDir_CancelledContext(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := storage.EnsureRootDir(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func newTestStorage(t *testing.T) FileStorage {
	tmpDir := t.TempDir()
	storage, err := NewFileStorage(tmpDir)
	require.NoError(t, err)
	return storage
}
