package store

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is one extracted manifest entry in the aggregate translation
// file. The JSON field names match the historical xlgChineseBack.json
// layout, so stores written by older tooling load unchanged.
type Record struct {
	UniqueID    string  `json:"UniqueID"`
	Name        *string `json:"Name"`
	Description *string `json:"Description"`
	Path        string  `json:"Path"`
	IsChinese   *bool   `json:"IsChinese,omitempty"`
	Nurl        *string `json:"Nurl"`
}

// Store maps a manifest's directory path, relative to the mods root, to
// its extracted record. It is written once per scan and read-only during
// restore.
type Store map[string]Record

// Load reads a store file in full. Missing or unparsable files are
// returned as errors for the caller to classify.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	return s, nil
}

// Save writes the whole store as indented UTF-8 JSON.
func (s Store) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
