// Package yaml loads tool configuration from a YAML file in the user's
// config directory.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/doctldr"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the well-known per-user config file location,
// e.g. ~/.config/doctldr/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "doctldr", "config.yaml"), nil
}

// Load reads configuration from path, or from DefaultPath when path is
// empty. A missing file yields the built-in defaults. Values present in
// the file overlay the defaults; absent keys keep their default values.
func Load(path string) (*doctldr.Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config directory: %w", err)
		}
		path = p
	}

	cfg := doctldr.NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, doctldr.Errorf(doctldr.EINVALID, "failed to parse config file %q: %s", path, err)
	}

	return cfg, nil
}
