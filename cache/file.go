package cache

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// File 提供一个基于本地文件的缓存，每个键对应目录下的一个 JSON 文件。
type File struct {
	mu  sync.Mutex
	dir string
}

var _ Cache = (*File)(nil)

// NewFile 返回一个新的文件缓存，目录不存在时在首次写入时创建。
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Path 返回键对应的文件路径。
func (f *File) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Set 先写临时文件再重命名，读者只会看到旧值或新值。
func (f *File) Set(key string, val []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, "."+key+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(val); err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err = os.Rename(tmpName, f.Path(key)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
