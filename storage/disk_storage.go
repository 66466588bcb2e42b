package storage

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// DiskStorage maps keys onto files below BaseDir.
type DiskStorage struct {
	BaseDir string
}

func NewDiskStorage(baseDir string) *DiskStorage {
	return &DiskStorage{BaseDir: baseDir}
}

func (ds *DiskStorage) path(key string) string {
	return filepath.Join(ds.BaseDir, filepath.FromSlash(key))
}

func (ds *DiskStorage) GetKeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	var matched []string

	err := filepath.WalkDir(ds.BaseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || strings.HasSuffix(path, ".tmp") {
			return nil
		}
		rel, err := filepath.Rel(ds.BaseDir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "can not list %s", ds.BaseDir)
	}
	sort.Strings(matched)

	return matched, nil
}

type diskStreamWriter struct {
	file *os.File
	tmp  string
	dest string
}

func (w *diskStreamWriter) Write(data []byte) (int, error) {
	return w.file.Write(data)
}

// Close moves the finished file into place so readers never see half a
// stream.
func (w *diskStreamWriter) Close() error {
	if err := w.file.Close(); err != nil {
		return errors.Wrap(err, "can not close stream")
	}
	return errors.Wrap(os.Rename(w.tmp, w.dest), "can not publish stream")
}

// Abort drops the temporary file; dest is left untouched.
func (w *diskStreamWriter) Abort() error {
	w.file.Close()
	if err := os.Remove(w.tmp); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "can not drop stream")
	}
	return nil
}

func (ds *DiskStorage) BeginStream(ctx context.Context, key string) (StreamWriter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dest := ds.path(key)
	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "can not create directory")
	}
	file, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*.tmp")
	if err != nil {
		return nil, errors.Wrap(err, "can not open stream")
	}

	return &diskStreamWriter{file: file, tmp: file.Name(), dest: dest}, nil
}

func (ds *DiskStorage) Write(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	filePath := ds.path(key)
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return errors.Wrap(err, "can not create directory")
	}

	return errors.Wrapf(os.WriteFile(filePath, data, 0644), "can not write %s", key)
}

func (ds *DiskStorage) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(ds.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrDoesNotExist
	}
	if err != nil {
		return nil, errors.Wrapf(err, "can not read %s", key)
	}
	return data, nil
}

func (ds *DiskStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(ds.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "can not delete %s", key)
	}
	return nil
}
