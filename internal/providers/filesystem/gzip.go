package filesystem

import (
	"context"
	"io"
	"os"

	"github.com/GriffinCanCode/fsutil/internal/infrastructure/monitoring"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

// Gunzip decompresses the gzip file at source into destination, reading
// bufferSize bytes at a time. A bufferSize of zero or less uses the
// configured default. Every failure is reported as ErrIO and the partial
// output is removed.
func (o *FilesystemOps) Gunzip(ctx context.Context, source, destination string, bufferSize int) (written int64, err error) {
	timer := monitoring.NewTimer(o.metrics, "gunzip")
	defer func() { timer.StopErr(err) }()

	if bufferSize <= 0 {
		bufferSize = o.bufferSize
	}

	in, err := os.Open(source)
	if err != nil {
		return 0, ioErr("gunzip", source, err)
	}
	defer in.Close()

	if sameFile(in, destination) {
		return 0, ioErr("gunzip", destination, errSameFile)
	}

	zr, err := gzip.NewReader(in)
	if err != nil {
		return 0, ioErr("gunzip", source, err)
	}
	defer zr.Close()

	out, err := os.Create(destination)
	if err != nil {
		return 0, ioErr("gunzip", destination, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = ioErr("gunzip", destination, cerr)
		}
		if err != nil {
			_ = os.Remove(destination)
			written = 0
		}
	}()

	buf := make([]byte, bufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, rerr := zr.Read(buf)
		if n > 0 {
			w, werr := out.Write(buf[:n])
			written += int64(w)
			if werr != nil {
				return written, ioErr("gunzip", destination, werr)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return written, ioErr("gunzip", source, rerr)
		}
	}

	o.metrics.AddArchiveBytes(monitoring.DirectionExtracted, written)
	o.logger.Debug("gunzip complete",
		zap.String("source", source),
		zap.String("destination", destination),
		zap.Int64("bytes", written))
	return written, nil
}

// sameFile reports whether path exists and is the file already open as f.
func sameFile(f *os.File, path string) bool {
	src, err := f.Stat()
	if err != nil {
		return false
	}
	dst, err := os.Stat(path)
	return err == nil && os.SameFile(src, dst)
}
