package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Dumper writes audit payloads as JSON files for offline inspection.
type Dumper struct {
	Dir string
}

func NewDumper(dir string) *Dumper {
	return &Dumper{Dir: dir}
}

// SaveJSON saves the provided data as JSON to a file with a UUID4
// filename and returns the filename.
func (d *Dumper) SaveJSON(data any) (string, error) {
	if err := d.ensureDir(); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	filename := fmt.Sprintf("%s.json", uuid.New().String())
	path := filepath.Join(d.Dir, filename)

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}

	return filename, nil
}

func (d *Dumper) ensureDir() error {
	if _, err := os.Stat(d.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(d.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
