package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSettingsStore persists durable client settings as a JSON file. It is
// the embedded-client analog of browser local storage.
type FileSettingsStore struct {
	path string
}

// NewFileSettingsStore creates a store backed by the given file path.
func NewFileSettingsStore(path string) *FileSettingsStore {
	return &FileSettingsStore{path: path}
}

// Load reads the stored settings. A missing file yields (nil, nil).
func (f *FileSettingsStore) Load(ctx context.Context) (*StoredSettings, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s StoredSettings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the settings, creating parent directories as needed.
func (f *FileSettingsStore) Save(ctx context.Context, s StoredSettings) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
