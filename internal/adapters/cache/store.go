// Package cache implements the on-disk speaker address cache.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/netip"
	"os"
	"path/filepath"

	"go.trai.ch/sonos/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.SpeakerCache as a single JSON file holding an array of IP literals.
type Store struct {
	path string
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the cache file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the cached addresses.
// It returns found == false and no error if the file does not exist.
func (s *Store) Load() ([]netip.Addr, bool, error) {
	//nolint:gosec // Path comes from configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, errors.Join(domain.ErrCacheRead, zerr.With(err, "path", s.path))
	}

	var addrs []netip.Addr
	if err := json.Unmarshal(data, &addrs); err != nil {
		return nil, false, errors.Join(domain.ErrCacheCorrupt, zerr.With(err, "path", s.path))
	}

	// netip.Addr decodes "" into the zero value without complaint.
	for i, addr := range addrs {
		if !addr.IsValid() {
			err := zerr.With(zerr.New("empty address"), "index", i)
			return nil, false, errors.Join(domain.ErrCacheCorrupt, zerr.With(err, "path", s.path))
		}
	}

	return addrs, true, nil
}

// Save replaces the cache with addrs.
// The content is written to a temporary sibling file and renamed into place,
// so readers see either the old or the new list.
func (s *Store) Save(addrs []netip.Addr) error {
	if addrs == nil {
		addrs = []netip.Addr{}
	}

	data, err := json.Marshal(addrs)
	if err != nil {
		return errors.Join(domain.ErrCacheWrite, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrCacheWrite, zerr.With(err, "path", dir))
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.Join(domain.ErrCacheWrite, zerr.With(err, "path", s.path))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrCacheWrite, zerr.With(err, "path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrCacheWrite, zerr.With(err, "path", tmpName))
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrCacheWrite, zerr.With(err, "path", tmpName))
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrCacheWrite, zerr.With(err, "path", s.path))
	}

	return nil
}

// Remove deletes the cache file. A missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Join(domain.ErrCacheRemove, zerr.With(err, "path", s.path))
	}
	return nil
}
