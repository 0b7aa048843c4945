package filesystem

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/fsutil/internal/shared/types"
	"github.com/GriffinCanCode/fsutil/internal/shared/utils"
)

// Provider exposes FilesystemOps as a catalog of parameterized tools
type Provider struct {
	ops *FilesystemOps
}

// NewProvider creates a provider over ops, or over New() when ops is nil
func NewProvider(ops *FilesystemOps) *Provider {
	if ops == nil {
		ops = New()
	}
	return &Provider{ops: ops}
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "Tree traversal, aggregation, removal and archive operations",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"size",
			"list",
			"remove",
			"archive",
			"extract",
			"hash",
			"search",
		},
		Tools: []types.Tool{
			{
				ID:          "filesystem.size",
				Name:        "Total Size",
				Description: "Byte size of a file or of every file below a directory",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File or directory path", Required: true},
					{Name: "follow_symlinks", Type: "boolean", Description: "Measure symlink targets", Required: false},
				},
				Returns: "number",
			},
			{
				ID:          "filesystem.list_files",
				Name:        "List Files",
				Description: "Files below a directory filtered by extension",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
					{Name: "extensions", Type: "array", Description: "Accepted extensions (e.g., ['txt', 'md'])", Required: false},
					{Name: "recursive", Type: "boolean", Description: "Descend into subdirectories (default true)", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "filesystem.remove",
				Name:        "Remove",
				Description: "Remove a file, symlink or directory",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Path to remove", Required: true},
					{Name: "recursive", Type: "boolean", Description: "Remove directory contents first", Required: false},
				},
				Returns: "boolean",
			},
			{
				ID:          "filesystem.zip",
				Name:        "Create ZIP",
				Description: "Archive a file or directory tree",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "File or directory to archive", Required: true},
					{Name: "output", Type: "string", Description: "Output ZIP path", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "filesystem.unzip",
				Name:        "Extract ZIP",
				Description: "Extract a ZIP archive",
				Parameters: []types.Parameter{
					{Name: "archive", Type: "string", Description: "ZIP file path", Required: true},
					{Name: "destination", Type: "string", Description: "Destination directory (default: archive directory)", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "filesystem.gunzip",
				Name:        "Decompress GZIP",
				Description: "Decompress a gzip file",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Gzip file path", Required: true},
					{Name: "destination", Type: "string", Description: "Output file path", Required: true},
					{Name: "buffer_size", Type: "number", Description: "Read chunk size in bytes", Required: false},
				},
				Returns: "number",
			},
			{
				ID:          "filesystem.hash",
				Name:        "Hash File",
				Description: "Hex digest of a file's content",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
					{Name: "algorithm", Type: "string", Description: "sha1, md5, crc32, sha256 or xxh64 (default sha256)", Required: false},
				},
				Returns: "string",
			},
			{
				ID:          "filesystem.mime",
				Name:        "MIME Type",
				Description: "Detect a file's media type from its content",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "filesystem.find",
				Name:        "Find Files",
				Description: "Find files by pattern (supports **)",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Root directory", Required: true},
					{Name: "pattern", Type: "string", Description: "Pattern relative to root (e.g., '**/*.go')", Required: true},
				},
				Returns: "array",
			},
		},
	}
}

// Execute runs a tool. Operational failures are reported in the result;
// the error return is reserved for unknown tools.
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}) (*types.Result, error) {
	switch toolID {
	case "filesystem.size":
		return p.size(ctx, params), nil
	case "filesystem.list_files":
		return p.listFiles(ctx, params), nil
	case "filesystem.remove":
		return p.remove(ctx, params), nil
	case "filesystem.zip":
		return p.zip(ctx, params), nil
	case "filesystem.unzip":
		return p.unzip(ctx, params), nil
	case "filesystem.gunzip":
		return p.gunzip(ctx, params), nil
	case "filesystem.hash":
		return p.hash(params), nil
	case "filesystem.mime":
		return p.mime(params), nil
	case "filesystem.find":
		return p.find(ctx, params), nil
	default:
		return nil, fmt.Errorf("unknown tool: %s", toolID)
	}
}

func (p *Provider) size(ctx context.Context, params map[string]interface{}) *types.Result {
	path, res := requireString(params, "path")
	if res != nil {
		return res
	}
	total, err := p.ops.TotalSize(ctx, path, boolParam(params, "follow_symlinks", false))
	if err != nil {
		return types.FromError(path, err)
	}
	return types.Success(path, map[string]interface{}{"size": total})
}

func (p *Provider) listFiles(ctx context.Context, params map[string]interface{}) *types.Result {
	path, res := requireString(params, "path")
	if res != nil {
		return res
	}
	files, err := p.ops.ListFiles(ctx, path, stringsParam(params, "extensions"), boolParam(params, "recursive", true))
	if err != nil {
		return types.FromError(path, err)
	}
	return types.Success(path, map[string]interface{}{"files": files, "count": len(files)})
}

func (p *Provider) remove(ctx context.Context, params map[string]interface{}) *types.Result {
	path, res := requireString(params, "path")
	if res != nil {
		return res
	}
	if err := p.ops.Remove(ctx, path, boolParam(params, "recursive", false)); err != nil {
		return types.FromError(path, err)
	}
	return types.Success(path, map[string]interface{}{"removed": true})
}

func (p *Provider) zip(ctx context.Context, params map[string]interface{}) *types.Result {
	source, res := requireString(params, "source")
	if res != nil {
		return res
	}
	output, res := requireString(params, "output")
	if res != nil {
		return res
	}
	stats, err := p.ops.Zip(ctx, source, output)
	if err != nil {
		return types.FromError(source, err)
	}
	return types.Success(output, map[string]interface{}{
		"files": stats.Files,
		"dirs":  stats.Dirs,
		"bytes": stats.Bytes,
	})
}

func (p *Provider) unzip(ctx context.Context, params map[string]interface{}) *types.Result {
	archive, res := requireString(params, "archive")
	if res != nil {
		return res
	}
	destination, _ := params["destination"].(string)
	stats, err := p.ops.Unzip(ctx, archive, destination)
	if err != nil {
		return types.FromError(archive, err)
	}
	return types.Success(archive, map[string]interface{}{
		"files": stats.Files,
		"dirs":  stats.Dirs,
		"bytes": stats.Bytes,
	})
}

func (p *Provider) gunzip(ctx context.Context, params map[string]interface{}) *types.Result {
	source, res := requireString(params, "source")
	if res != nil {
		return res
	}
	destination, res := requireString(params, "destination")
	if res != nil {
		return res
	}
	written, err := p.ops.Gunzip(ctx, source, destination, intParam(params, "buffer_size", 0))
	if err != nil {
		return types.FromError(source, err)
	}
	return types.Success(destination, map[string]interface{}{"bytes": written})
}

func (p *Provider) hash(params map[string]interface{}) *types.Result {
	path, res := requireString(params, "path")
	if res != nil {
		return res
	}
	algorithm := utils.SHA256
	if name, ok := params["algorithm"].(string); ok && name != "" {
		parsed, err := utils.ParseAlgorithm(name)
		if err != nil {
			return types.Failure(path, err)
		}
		algorithm = parsed
	}
	sum, err := p.ops.Hash(path, algorithm)
	if err != nil {
		return types.FromError(path, err)
	}
	return types.Success(path, map[string]interface{}{"algorithm": string(algorithm), "hash": sum})
}

func (p *Provider) mime(params map[string]interface{}) *types.Result {
	path, res := requireString(params, "path")
	if res != nil {
		return res
	}
	mtype, err := p.ops.MIME(path)
	if err != nil {
		return types.FromError(path, err)
	}
	return types.Success(path, map[string]interface{}{"mime": mtype})
}

func (p *Provider) find(ctx context.Context, params map[string]interface{}) *types.Result {
	path, res := requireString(params, "path")
	if res != nil {
		return res
	}
	pattern, res := requireString(params, "pattern")
	if res != nil {
		return res
	}
	matches, err := p.ops.Find(ctx, path, pattern)
	if err != nil {
		return types.FromError(path, err)
	}
	return types.Success(path, map[string]interface{}{"files": matches, "count": len(matches)})
}

func requireString(params map[string]interface{}, name string) (string, *types.Result) {
	value, ok := params[name].(string)
	if !ok || value == "" {
		return "", types.Failure("", fmt.Errorf("%s parameter required", name))
	}
	return value, nil
}

func boolParam(params map[string]interface{}, name string, fallback bool) bool {
	if value, ok := params[name].(bool); ok {
		return value
	}
	return fallback
}

// intParam accepts the numeric types JSON decoding and Go callers produce
func intParam(params map[string]interface{}, name string, fallback int) int {
	switch value := params[name].(type) {
	case int:
		return value
	case int64:
		return int(value)
	case float64:
		return int(value)
	default:
		return fallback
	}
}

func stringsParam(params map[string]interface{}, name string) []string {
	switch value := params[name].(type) {
	case []string:
		return value
	case []interface{}:
		out := make([]string, 0, len(value))
		for _, v := range value {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
