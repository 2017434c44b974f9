// Package jsonfile persists whole documents as flat JSON files in the data
// directory. Every read-modify-write cycle holds an OS file lock, so concurrent
// requests (or a second process on the same data dir) cannot interleave writes.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Store wraps a single JSON file with lock-guarded access.
type Store struct {
	path string
	lock *flock.Flock
}

// New constructs a Store for the given file path. The lock lives in a sibling
// .lock file so atomic renames of the data file never touch the lock inode.
func New(path string) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Read decodes the file into out under a shared lock. A missing or empty file
// leaves out untouched and returns nil.
func (s *Store) Read(out any) error {
	if err := s.lock.RLock(); err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer s.lock.Unlock()
	return s.read(out)
}

// Write marshals in and replaces the file under an exclusive lock.
func (s *Store) Write(in any) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer s.lock.Unlock()
	return s.write(in)
}

// Update runs a full read-modify-write cycle with the exclusive lock held
// throughout: the current contents are decoded into out, mutate is applied,
// and the (possibly mutated) value is written back.
func (s *Store) Update(out any, mutate func() error) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	defer s.lock.Unlock()

	if err := s.read(out); err != nil {
		return err
	}
	if err := mutate(); err != nil {
		return err
	}
	return s.write(out)
}

func (s *Store) read(out any) error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	return nil
}

// write goes through a temp file and rename so readers never observe a
// partially written document.
func (s *Store) write(in any) error {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("temp file for %s: %w", s.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	return nil
}
