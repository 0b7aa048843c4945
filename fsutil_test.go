package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.md"), []byte("0123456789"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "c.txt"), []byte("abc"), 0o644))
	return root
}

// TestScenario tests the package-level API end to end on a small tree
func TestScenario(t *testing.T) {
	root := writeTree(t)
	ctx := context.Background()

	size, err := fsutil.Size(ctx, root)
	require.NoError(t, err)
	assert.Equal(t, uint64(18), size)

	files, err := fsutil.ListFiles(ctx, root, []string{"txt"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.txt"), filepath.Join(root, "sub", "c.txt")}, files)

	archive := filepath.Join(t.TempDir(), "t.zip")
	_, err = fsutil.Zip(ctx, root, archive)
	require.NoError(t, err)

	out := t.TempDir()
	_, err = fsutil.Unzip(ctx, archive, out)
	require.NoError(t, err)
	extracted, err := fsutil.Size(ctx, out)
	require.NoError(t, err)
	assert.Equal(t, size, extracted)

	require.NoError(t, fsutil.Remove(ctx, root, true))
	assert.ErrorIs(t, fsutil.Remove(ctx, root, true), fsutil.ErrNotFound)
}

func TestBoundaries(t *testing.T) {
	ctx := context.Background()

	files, err := fsutil.ListFiles(ctx, "/does/not/exist", nil, true)
	require.NoError(t, err)
	assert.Empty(t, files)

	root := writeTree(t)
	err = fsutil.Remove(ctx, root, false)
	assert.ErrorIs(t, err, fsutil.ErrNotAFile)

	var opErr *fsutil.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, root, opErr.Path)
}

func TestNewFromConfig(t *testing.T) {
	cfg := fsutil.DefaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Archive.CompressionLevel = 9

	ops, err := fsutil.NewFromConfig(cfg)
	require.NoError(t, err)
	require.NotNil(t, ops.Metrics())

	_, err = ops.TotalSize(context.Background(), writeTree(t), false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ops.Metrics().Snapshot().TotalOperations)

	cfg.Logging.Development = true
	cfg.Logging.Level = "debug"
	dev, err := fsutil.NewFromConfig(cfg)
	require.NoError(t, err)
	require.NotNil(t, dev)

	cfg.Archive.CompressionLevel = 42
	_, err = fsutil.NewFromConfig(cfg)
	assert.Error(t, err)
}

func TestNewWithRemover(t *testing.T) {
	root := writeTree(t)
	var removed []string
	ops := fsutil.New(fsutil.WithRemover(fsutil.RemoverFunc(func(name string) error {
		removed = append(removed, name)
		return os.Remove(name)
	})))

	require.NoError(t, ops.Remove(context.Background(), root, true))
	require.Len(t, removed, 5)
	assert.Equal(t, root, removed[len(removed)-1])
}

// TestOneCallPrimitives tests the default-instance wrappers on a scratch file
func TestOneCallPrimitives(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, fsutil.Write(path, []byte("hello")))
	require.NoError(t, fsutil.Append(path, []byte("!")))

	data, err := fsutil.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "hello!", string(data))
	assert.True(t, fsutil.IsFile(path))
	assert.False(t, fsutil.IsLink(path))

	crc, err := fsutil.HashCRC32(path)
	require.NoError(t, err)
	assert.NotZero(t, crc)
}

func TestPathHelpers(t *testing.T) {
	parts := fsutil.SplitPath("/srv/http/file.tar.gz")
	assert.Equal(t, "file.tar", parts.Stem)
	assert.Equal(t, "gz", parts.Ext)
	assert.Equal(t, "gz", fsutil.Extension("/srv/http/file.tar.gz"))
	assert.True(t, fsutil.MatchExtension("GZ", []string{".gz"}))

	rel, ok := fsutil.Relativize(filepath.Join("srv", "http", "a.txt"), filepath.Join("srv", "http"))
	assert.True(t, ok)
	assert.Equal(t, "a.txt", rel)
}
