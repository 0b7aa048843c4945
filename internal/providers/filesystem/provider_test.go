package filesystem

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/fsutil/internal/shared/types"
	"github.com/GriffinCanCode/fsutil/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProviderDefinition tests the tool catalog
func TestProviderDefinition(t *testing.T) {
	def := NewProvider(nil).Definition()

	assert.Equal(t, "filesystem", def.ID)
	assert.Equal(t, types.CategoryFilesystem, def.Category)
	assert.Len(t, def.Tools, 9)

	for _, tool := range def.Tools {
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Description)
	}

	for _, id := range []string{
		"filesystem.size",
		"filesystem.list_files",
		"filesystem.remove",
		"filesystem.zip",
		"filesystem.unzip",
		"filesystem.gunzip",
		"filesystem.hash",
		"filesystem.mime",
		"filesystem.find",
	} {
		_, ok := def.Tool(id)
		assert.True(t, ok, id)
	}
}

func TestProviderExecute(t *testing.T) {
	root := scenarioTree(t)
	p := NewProvider(New())
	ctx := context.Background()

	res, err := p.Execute(ctx, "filesystem.size", map[string]interface{}{"path": root})
	require.NoError(t, err)
	testutil.AssertDataField(t, res, "size", uint64(18))

	res, err = p.Execute(ctx, "filesystem.list_files", map[string]interface{}{
		"path":       root,
		"extensions": []interface{}{"txt"},
	})
	require.NoError(t, err)
	testutil.AssertDataField(t, res, "count", 2)

	res, err = p.Execute(ctx, "filesystem.hash", map[string]interface{}{
		"path":      filepath.Join(root, "a.txt"),
		"algorithm": "md5",
	})
	require.NoError(t, err)
	testutil.AssertDataField(t, res, "hash", "5d41402abc4b2a76b9719d911017c592")

	res, err = p.Execute(ctx, "filesystem.find", map[string]interface{}{"path": root, "pattern": "**/*.md"})
	require.NoError(t, err)
	testutil.AssertDataField(t, res, "count", 1)
}

func TestProviderArchiveTools(t *testing.T) {
	root := scenarioTree(t)
	p := NewProvider(nil)
	ctx := context.Background()
	archive := filepath.Join(t.TempDir(), "p.zip")

	res, err := p.Execute(ctx, "filesystem.zip", map[string]interface{}{"source": root, "output": archive})
	require.NoError(t, err)
	testutil.AssertDataField(t, res, "files", 3)

	out := t.TempDir()
	res, err = p.Execute(ctx, "filesystem.unzip", map[string]interface{}{"archive": archive, "destination": out})
	require.NoError(t, err)
	testutil.AssertDataField(t, res, "bytes", int64(18))

	res, err = p.Execute(ctx, "filesystem.remove", map[string]interface{}{"path": out, "recursive": true})
	require.NoError(t, err)
	testutil.AssertSuccess(t, res)
	assert.NoDirExists(t, out)
}

func TestProviderFailures(t *testing.T) {
	p := NewProvider(nil)
	ctx := context.Background()

	_, err := p.Execute(ctx, "filesystem.nope", nil)
	assert.Error(t, err)

	res, err := p.Execute(ctx, "filesystem.size", map[string]interface{}{})
	require.NoError(t, err)
	testutil.AssertError(t, res)

	res, err = p.Execute(ctx, "filesystem.remove", map[string]interface{}{"path": filepath.Join(t.TempDir(), "missing")})
	require.NoError(t, err)
	testutil.AssertError(t, res)
	assert.Equal(t, types.StatusFailed, res.Status)
	assert.ErrorIs(t, res.Err(), ErrNotFound)

	res, err = p.Execute(ctx, "filesystem.hash", map[string]interface{}{"path": "x", "algorithm": "sha3"})
	require.NoError(t, err)
	testutil.AssertError(t, res)
}
