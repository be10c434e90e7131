package timeline

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Load reads a golden timeline from path.
func Load(path string) (Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Timeline{}, fmt.Errorf("reading timeline %s: %w", path, err)
	}

	var tl Timeline
	if err := toml.Unmarshal(data, &tl); err != nil {
		return Timeline{}, fmt.Errorf("parsing timeline %s: %w", path, err)
	}
	if _, err := tl.Phases(); err != nil {
		return Timeline{}, fmt.Errorf("validating timeline %s: %w", path, err)
	}
	return tl, nil
}

// Save writes tl to path, creating parent directories as needed.
func Save(path string, tl Timeline) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(tl)
	if err != nil {
		return fmt.Errorf("marshaling timeline: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing timeline %s: %w", path, err)
	}
	return nil
}
