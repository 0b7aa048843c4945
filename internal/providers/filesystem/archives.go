package filesystem

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/GriffinCanCode/fsutil/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fsutil/internal/shared/paths"
	"github.com/google/uuid"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ArchivePlanEntry maps one walked entry to its name inside a zip archive
type ArchivePlanEntry struct {
	Source Entry
	Name   string // Root-relative, slash separated, "/" suffix for directories
	Dir    bool
}

// BuildArchivePlan returns the entries Zip would write for root, in order
func (o *FilesystemOps) BuildArchivePlan(ctx context.Context, root string) ([]ArchivePlanEntry, error) {
	source, info, err := canonicalRoot(root)
	if err != nil {
		return nil, wrapErr("zip", root, err)
	}
	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return nil, &OpError{Op: "zip", Path: root, Kind: ErrUnsupported}
		}
		return []ArchivePlanEntry{singleFileEntry(source, info)}, nil
	}

	var plan []ArchivePlanEntry
	err = planArchive(ctx, source, func(p ArchivePlanEntry) error {
		plan = append(plan, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Zip writes root to a zip archive at destination. A directory root is
// stored with root-relative names; a file root becomes a single entry named
// after its basename. The archive is assembled in a temporary file beside
// destination and renamed into place only after it has been finalized, so a
// failed run never leaves a partial archive.
func (o *FilesystemOps) Zip(ctx context.Context, root, destination string) (stats *ArchiveStats, err error) {
	timer := monitoring.NewTimer(o.metrics, "zip")
	defer func() { timer.StopErr(err) }()

	source, info, err := canonicalRoot(root)
	if err != nil {
		return nil, wrapErr("zip", root, err)
	}
	if !info.IsDir() && !info.Mode().IsRegular() {
		return nil, &OpError{Op: "zip", Path: root, Kind: ErrUnsupported}
	}

	dest, err := filepath.Abs(destination)
	if err != nil {
		return nil, ioErr("zip", destination, err)
	}
	if dir, err := filepath.EvalSymlinks(filepath.Dir(dest)); err == nil {
		dest = filepath.Join(dir, filepath.Base(dest))
	}
	if existing, err := os.Stat(dest); err == nil && os.SameFile(info, existing) {
		return nil, &OpError{Op: "zip", Path: destination, Kind: ErrUnsupported, Err: errSameFile}
	}
	tmp := dest + "." + uuid.NewString() + ".tmp"

	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, ioErr("zip", destination, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = out.Close()
			_ = os.Remove(tmp)
		}
	}()

	zw := zip.NewWriter(out)
	level := o.compressionLevel
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, level)
	})

	stats = &ArchiveStats{}
	if info.IsDir() {
		err = planArchive(ctx, source, func(p ArchivePlanEntry) error {
			if p.Source.Path == tmp || p.Source.Path == dest {
				return nil
			}
			return addArchiveEntry(zw, p, stats)
		})
	} else {
		err = addArchiveEntry(zw, singleFileEntry(source, info), stats)
	}
	if err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, ioErr("zip", destination, err)
	}
	if err := out.Close(); err != nil {
		return nil, ioErr("zip", destination, err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return nil, ioErr("zip", destination, err)
	}
	committed = true

	o.metrics.AddEntries("zip", stats.Files+stats.Dirs)
	o.metrics.AddArchiveBytes(monitoring.DirectionArchived, stats.Bytes)
	o.logger.Debug("archive created",
		zap.String("source", source),
		zap.String("destination", dest),
		zap.Int("files", stats.Files),
		zap.Int("dirs", stats.Dirs),
		zap.Int64("bytes", stats.Bytes))
	return stats, nil
}

// Unzip extracts archive into destination, or into the archive's own
// directory when destination is empty. Entries that would escape the
// destination abort the run with ErrInvalidEntry.
func (o *FilesystemOps) Unzip(ctx context.Context, archive, destination string) (stats *ArchiveStats, err error) {
	timer := monitoring.NewTimer(o.metrics, "unzip")
	defer func() { timer.StopErr(err) }()

	if destination == "" {
		destination = paths.DirName(archive)
	}

	r, err := zip.OpenReader(archive)
	if err != nil {
		return nil, wrapErr("unzip", archive, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(r))

	destRoot, err := filepath.Abs(destination)
	if err != nil {
		return nil, ioErr("unzip", destination, err)
	}
	if err := os.MkdirAll(destRoot, o.dirMode); err != nil {
		return nil, ioErr("unzip", destination, err)
	}

	stats = &ArchiveStats{}
	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		target, err := extractionTarget(destRoot, f.Name)
		if err != nil {
			return nil, err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, o.dirMode); err != nil {
				return nil, ioErr("unzip", target, err)
			}
			stats.Dirs++
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), o.dirMode); err != nil {
			return nil, ioErr("unzip", target, err)
		}
		n, err := extractFile(f, target)
		if err != nil {
			return nil, ioErr("unzip", target, err)
		}
		modified := f.Modified
		if modified.IsZero() {
			modified = f.FileInfo().ModTime()
		}
		if err := os.Chtimes(target, modified, modified); err != nil {
			return nil, ioErr("unzip", target, err)
		}
		stats.Files++
		stats.Bytes += n
	}

	o.metrics.AddEntries("unzip", stats.Files+stats.Dirs)
	o.metrics.AddArchiveBytes(monitoring.DirectionExtracted, stats.Bytes)
	o.logger.Debug("archive extracted",
		zap.String("archive", archive),
		zap.String("destination", destRoot),
		zap.Int("files", stats.Files),
		zap.Int("dirs", stats.Dirs))
	return stats, nil
}

// ZipList describes every member of archive
func (o *FilesystemOps) ZipList(archive string) (_ []ArchiveEntry, err error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return nil, wrapErr("zip list", archive, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(r))

	entries := make([]ArchiveEntry, 0, len(r.File))
	for _, f := range r.File {
		entries = append(entries, ArchiveEntry{
			Name:           f.Name,
			Size:           f.UncompressedSize64,
			CompressedSize: f.CompressedSize64,
			Modified:       f.Modified,
			IsDir:          f.FileInfo().IsDir(),
		})
	}
	return entries, nil
}

// ZipSize returns the total uncompressed size of archive's members
func (o *FilesystemOps) ZipSize(archive string) (uint64, error) {
	entries, err := o.ZipList(archive)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, e := range entries {
		total += e.Size
	}
	return total, nil
}

func canonicalRoot(root string) (string, fs.FileInfo, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", nil, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", nil, err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", nil, err
	}
	return resolved, info, nil
}

func singleFileEntry(path string, info fs.FileInfo) ArchivePlanEntry {
	return ArchivePlanEntry{
		Source: Entry{Path: path, Name: info.Name(), Kind: KindFile, info: info},
		Name:   filepath.Base(path),
	}
}

// planArchive walks source and calls visit for every entry that belongs in
// the archive. Dangling symlinks are neither files nor directories and are
// left out.
func planArchive(ctx context.Context, source string, visit func(ArchivePlanEntry) error) error {
	opts := TraversalOptions{Recursive: true, FollowSymlinks: true, Order: PreOrder}
	for entry, err := range Walk(ctx, source, opts) {
		if err != nil {
			return err
		}
		rel, ok := paths.Relativize(entry.Path, source)
		if !ok {
			continue
		}
		name := paths.ToSlash(rel)

		var p ArchivePlanEntry
		switch entry.Kind {
		case KindDirectory:
			p = ArchivePlanEntry{Source: entry, Name: name + "/", Dir: true}
		case KindFile:
			p = ArchivePlanEntry{Source: entry, Name: name}
		default:
			continue
		}
		if err := visit(p); err != nil {
			return err
		}
	}
	return nil
}

func addArchiveEntry(zw *zip.Writer, p ArchivePlanEntry, stats *ArchiveStats) (err error) {
	info, err := p.Source.Info()
	if err != nil {
		return wrapErr("zip", p.Source.Path, err)
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return wrapErr("zip", p.Source.Path, err)
	}
	header.Name = p.Name

	if p.Dir {
		header.Method = zip.Store
		if _, err := zw.CreateHeader(header); err != nil {
			return ioErr("zip", p.Source.Path, err)
		}
		stats.Dirs++
		return nil
	}

	header.Method = zip.Deflate
	w, err := zw.CreateHeader(header)
	if err != nil {
		return ioErr("zip", p.Source.Path, err)
	}

	f, err := os.Open(p.Source.Path)
	if err != nil {
		return wrapErr("zip", p.Source.Path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	n, err := io.Copy(w, f)
	if err != nil {
		return ioErr("zip", p.Source.Path, err)
	}
	stats.Files++
	stats.Bytes += n
	return nil
}

// extractionTarget joins name onto root and rejects names that resolve
// outside of it.
func extractionTarget(root, name string) (string, error) {
	invalid := &OpError{Op: "unzip", Path: name, Kind: ErrInvalidEntry}
	if name == "" || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) || filepath.IsAbs(name) {
		return "", invalid
	}
	if filepath.VolumeName(name) != "" {
		return "", invalid
	}

	target := filepath.Join(root, filepath.FromSlash(name))
	if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
		return "", invalid
	}
	return target, nil
}

func extractFile(f *zip.File, target string) (n int64, err error) {
	rc, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(rc))

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}
	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	n, err = io.Copy(out, rc)
	if err != nil {
		return n, err
	}
	if err := out.Chmod(mode); err != nil && !errors.Is(err, fs.ErrPermission) {
		return n, err
	}
	return n, nil
}
