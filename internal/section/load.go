package section

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads a section definition from a JSON or YAML file.
// The format is chosen by extension; anything other than .yaml/.yml is read
// as JSON.
func LoadFromFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sec *Section
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		sec, err = ParseYAML(data)
	default:
		sec, err = ParseJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sec, nil
}

// ParseJSON decodes and validates a section; an absent cover defaults to
// DefaultCover
func ParseJSON(data []byte) (*Section, error) {
	sec := New()
	if err := json.Unmarshal(data, &sec); err != nil {
		return nil, fmt.Errorf("decode section: %w", err)
	}
	return finish(&sec)
}

// ParseYAML decodes and validates a section, like ParseJSON
func ParseYAML(data []byte) (*Section, error) {
	sec := New()
	if err := yaml.Unmarshal(data, &sec); err != nil {
		return nil, fmt.Errorf("decode section: %w", err)
	}
	return finish(&sec)
}

func finish(sec *Section) (*Section, error) {
	if err := sec.Validate(); err != nil {
		return nil, err
	}
	return sec, nil
}
