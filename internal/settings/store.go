package settings

import (
	"context"
	"sync"

	"sentinel-backend/internal/shared/storage/jsonfile"
)

// Store defines persistence for the settings record.
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

// FileStore persists settings as a flat JSON file.
type FileStore struct {
	file *jsonfile.Store
}

// NewFileStore constructs a FileStore for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{file: jsonfile.New(path)}
}

// Load reads the settings file, falling back to defaults for anything unset.
func (s *FileStore) Load(ctx context.Context) (Settings, error) {
	if err := ctx.Err(); err != nil {
		return Settings{}, err
	}
	out := Defaults()
	if err := s.file.Read(&out); err != nil {
		return Settings{}, err
	}
	return out, nil
}

// Save replaces the settings file.
func (s *FileStore) Save(ctx context.Context, settings Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.file.Write(settings)
}

// MemoryStore holds settings in memory and is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	settings Settings
}

// NewMemoryStore constructs a MemoryStore seeded with defaults.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{settings: Defaults()}
}

// Load returns the current settings.
func (s *MemoryStore) Load(ctx context.Context) (Settings, error) {
	if err := ctx.Err(); err != nil {
		return Settings{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

// Save replaces the current settings.
func (s *MemoryStore) Save(ctx context.Context, settings Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}
