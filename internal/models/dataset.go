package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// Dataset bundles the three input collections the metrics engine consumes.
type Dataset struct {
	Orders    []Order    `json:"orders"`
	MenuItems []MenuItem `json:"menu_items"`
	Customers []Customer `json:"customers"`
}

func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading dataset file: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("error parsing dataset file %s: %w", path, err)
	}
	return &ds, nil
}

func (d *Dataset) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("error serialising dataset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing dataset file %s: %w", path, err)
	}
	return nil
}
