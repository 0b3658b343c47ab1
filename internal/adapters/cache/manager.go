package cache

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ServiceCache = (*Manager[domain.Service])(nil)

// Manager reads and writes a sequence of records in a single cache file.
//
// A Manager with an empty path is a pass-through: Save returns its input and
// writes nothing, Load returns nothing.
//
// Every operation on the file handle runs under one mutex, so concurrent
// callers never interleave frames. There is no cross-process locking.
type Manager[T any] struct {
	path   string
	codec  Codec[T]
	logger ports.Logger

	mu   sync.Mutex
	file *os.File
}

// NewManager creates a Manager for the file at path.
func NewManager[T any](path string, codec Codec[T], logger ports.Logger) *Manager[T] {
	if path != "" {
		path = filepath.Clean(path)
	}
	return &Manager[T]{
		path:   path,
		codec:  codec,
		logger: logger,
	}
}

// Location returns the backing file path, or "" when caching is disabled.
func (m *Manager[T]) Location() string {
	return m.path
}

// Load returns every record in the file, in order.
// A missing or empty file yields no records and no error. Decoding stops at the
// first truncated or undecodable frame; the records before it are returned.
func (m *Manager[T]) Load() ([]T, error) {
	if m.path == "" {
		return nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.open(false)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", m.path)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", m.path)
	}

	return m.decode(data), nil
}

func (m *Manager[T]) decode(data []byte) []T {
	var records []T
	for len(data) > 0 {
		payload, rest, err := NextFrame(data)
		if err != nil {
			m.warnCorrupt(err, len(records))
			break
		}
		record, err := m.codec.Decode(payload)
		if err != nil {
			m.warnCorrupt(err, len(records))
			break
		}
		records = append(records, record)
		data = rest
	}
	return records
}

func (m *Manager[T]) warnCorrupt(err error, decoded int) {
	if m.logger == nil {
		return
	}
	m.logger.Warn("cache read stopped early", "path", m.path, "records", decoded, "error", err)
}

// Save replaces the file content with records and returns records unchanged.
// The returned slice is the input even when the write fails, so Save can sit
// inside a pipeline without changing what flows through it.
func (m *Manager[T]) Save(records []T) ([]T, error) {
	if m.path == "" {
		return records, nil
	}

	var buf []byte
	for _, record := range records {
		payload, err := m.codec.Encode(record)
		if err != nil {
			return records, err
		}
		if buf, err = AppendFrame(buf, payload); err != nil {
			return records, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.open(true)
	if err != nil {
		return records, err
	}
	if err := m.truncate(f); err != nil {
		return records, err
	}
	if _, err := f.Write(buf); err != nil {
		return records, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", m.path)
	}
	if err := f.Sync(); err != nil {
		return records, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", m.path)
	}

	return records, nil
}

// Clear empties the cache file so that the next Load misses.
// Clearing a cache whose file does not exist is a no-op.
func (m *Manager[T]) Clear() error {
	if m.path == "" {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.open(false)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return m.truncate(f)
}

// Close releases the file handle. The Manager reopens the file on next use.
func (m *Manager[T]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file == nil {
		return nil
	}
	err := m.file.Close()
	m.file = nil
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", m.path)
	}
	return nil
}

// open returns the shared handle, opening it on first use. Callers hold m.mu.
func (m *Manager[T]) open(create bool) (*os.File, error) {
	if m.file != nil {
		return m.file, nil
	}

	flags := os.O_RDWR
	if create {
		flags |= os.O_CREATE
		if err := os.MkdirAll(filepath.Dir(m.path), domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "path", m.path)
		}
	}

	//nolint:gosec // Path comes from the user's own settings
	f, err := os.OpenFile(m.path, flags, domain.PrivateFilePerm)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheOpenFailed.Error()), "path", m.path)
	}
	m.file = f
	return f, nil
}

// truncate empties f and rewinds it. Callers hold m.mu.
func (m *Manager[T]) truncate(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", m.path)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", m.path)
	}
	return nil
}
