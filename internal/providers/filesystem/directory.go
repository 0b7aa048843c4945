package filesystem

import (
	"os"
)

// CreateDirectory creates path with mode. A zero mode uses the configured
// directory mode. With recursive set, missing parents are created and an
// existing directory is not an error.
func (o *FilesystemOps) CreateDirectory(path string, mode os.FileMode, recursive bool) error {
	if mode == 0 {
		mode = o.dirMode
	}
	var err error
	if recursive {
		err = os.MkdirAll(path, mode)
	} else {
		err = os.Mkdir(path, mode)
	}
	if err != nil {
		return wrapErr("mkdir", path, err)
	}
	return nil
}

// Scan returns the names in directory, sorted, without "." and ".."
func (o *FilesystemOps) Scan(directory string) ([]string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, wrapErr("scan", directory, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
