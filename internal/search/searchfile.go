// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seekspot/pkg/types"
)

// SearchFile is the on-disk representation of a search and its places.
// A saved search can be reloaded and re-rendered without querying the
// provider again.
type SearchFile struct {
	Request types.SearchRequest `yaml:"request"`
	Summary SearchSummary       `yaml:"summary"`
	Places  []types.Place       `yaml:"places"`
}

// SearchSummary stores where the places came from and when.
type SearchSummary struct {
	Total      int                 `yaml:"total"`
	Source     Source              `yaml:"source"`
	Origin     types.Coordinate    `yaml:"origin"`
	Categories []types.CategoryTag `yaml:"categories,omitempty"`
	RawResults int                 `yaml:"raw_results"`
	Secondary  bool                `yaml:"secondary"`
	Timestamp  time.Time           `yaml:"timestamp"`
}

// WriteSearchFile saves out to a YAML file at path, creating parent
// directories as needed.
func WriteSearchFile(path string, out Output) error {
	sf := SearchFile{
		Request: out.Request,
		Summary: SearchSummary{
			Total:      len(out.Places),
			Source:     out.Source,
			Origin:     out.Origin,
			Categories: out.Categories,
			RawResults: out.RawResults,
			Secondary:  out.Secondary,
			Timestamp:  time.Now().UTC(),
		},
		Places: out.Places,
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return fmt.Errorf("marshaling search file: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating search file directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSearchFile loads a previously saved search from disk.
func ReadSearchFile(path string) (*SearchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading search file: %w", err)
	}
	var sf SearchFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parsing search file: %w", err)
	}
	return &sf, nil
}

// Output converts the file back into a search Output.
func (sf *SearchFile) Output() Output {
	return Output{
		Request:    sf.Request,
		Origin:     sf.Summary.Origin,
		Categories: sf.Summary.Categories,
		Source:     sf.Summary.Source,
		RawResults: sf.Summary.RawResults,
		Secondary:  sf.Summary.Secondary,
		Places:     sf.Places,
	}
}
