package filesystem

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/fsutil/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	root := testutil.BuildTree(t, map[string]string{
		"a.txt":          "1",
		"b.md":           "2",
		"sub/c.txt":      "3",
		"sub/deep/d.txt": "4",
		"sub/deep/e.go":  "5",
	})
	ops := New()
	ctx := context.Background()

	all, err := ops.Find(ctx, root, "**/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "c.txt"),
		filepath.Join(root, "sub", "deep", "d.txt"),
	}, all)

	top, err := ops.Find(ctx, root, "*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "a.txt")}, top)

	none, err := ops.Find(ctx, root, "**/*.rs")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFindErrors(t *testing.T) {
	root := scenarioTree(t)
	ops := New()
	ctx := context.Background()

	_, err := ops.Find(ctx, root, "[unclosed")
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = ops.Find(ctx, filepath.Join(root, "a.txt"), "*")
	assert.ErrorIs(t, err, ErrNotADirectory)

	_, err = ops.Find(ctx, filepath.Join(root, "missing"), "*")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGlob(t *testing.T) {
	root := scenarioTree(t)
	ops := New()

	matches, err := ops.Glob(filepath.Join(root, "**", "*.txt"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "c.txt"),
	}, matches)

	_, err = ops.Glob(filepath.Join(root, "[unclosed"))
	assert.ErrorIs(t, err, ErrInvalidPattern)
}
