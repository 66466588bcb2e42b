package storage

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/hoyle1974/timespan/misc"
)

// MemoryStorage keeps everything in a map.  It is what tests and one shot
// CLI invocations use.
type MemoryStorage struct {
	_    misc.NoCopy
	lock sync.Mutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (m *MemoryStorage) GetKeysWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	ret := []string{}
	for _, k := range misc.SortedKeys(m.data) {
		if strings.HasPrefix(k, prefix) {
			ret = append(ret, k)
		}
	}

	return ret, nil
}

func (m *MemoryStorage) Write(ctx context.Context, key string, data []byte) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.data[key] = misc.CopyBytes(data)

	return nil
}

type memoryStreamWriter struct {
	storage *MemoryStorage
	key     string
	buf     bytes.Buffer
}

func (w *memoryStreamWriter) Write(data []byte) (int, error) {
	return w.buf.Write(data)
}

func (w *memoryStreamWriter) Abort() error {
	w.buf.Reset()
	return nil
}

func (w *memoryStreamWriter) Close() error {
	w.storage.lock.Lock()
	defer w.storage.lock.Unlock()

	w.storage.data[w.key] = w.buf.Bytes()
	return nil
}

func (m *MemoryStorage) BeginStream(ctx context.Context, key string) (StreamWriter, error) {
	return &memoryStreamWriter{storage: m, key: key}, nil
}

func (m *MemoryStorage) Read(ctx context.Context, key string) ([]byte, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	data, ok := m.data[key]
	if !ok {
		return nil, ErrDoesNotExist
	}

	return misc.CopyBytes(data), nil
}

func (m *MemoryStorage) Delete(ctx context.Context, key string) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.data, key)

	return nil
}
