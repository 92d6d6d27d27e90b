package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/gofrs/flock"
)

// File persists Settings as TOML at Path.
type File struct {
	Path string
}

// DefaultPath returns the settings file location under the user config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "oshi-overlay", "settings.toml"), nil
}

// Load reads the settings file. A missing file yields Defaults and no error.
func (f File) Load() (Settings, error) {
	s := Defaults()
	_, err := toml.DecodeFile(f.Path, &s)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("read settings: %w", err)
	}
	s.normalize()
	return s, nil
}

// Save writes s atomically while holding a lock file next to Path.
func (f File) Save(s Settings) error {
	dir := filepath.Dir(f.Path)
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	lock := flock.New(f.Path + ".lock")
	err = lock.Lock()
	if err != nil {
		return fmt.Errorf("lock settings: %w", err)
	}
	defer lock.Unlock()

	var buf bytes.Buffer
	err = toml.NewEncoder(&buf).Encode(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	_, err = tmp.Write(buf.Bytes())
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save settings: %w", err)
	}
	err = os.Rename(tmp.Name(), f.Path)
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
