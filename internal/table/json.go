package table

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fubueng/gostringer/internal/geometry"
	"github.com/fubueng/gostringer/internal/props"
	"github.com/fubueng/gostringer/internal/stringer"
	"github.com/fubueng/gostringer/internal/zone"
)

// ReadLookup loads the cross-section lookup (type code → frame ID → mm²)
// from a JSON file. A missing path returns an empty lookup, matching the
// engine's absent-key-yields-zero contract.
func ReadLookup(path string) (geometry.Lookup, error) {
	if path == "" {
		return geometry.Lookup{}, nil
	}
	var lookup geometry.Lookup
	if err := readJSON(path, &lookup); err != nil {
		return nil, fmt.Errorf("cross-section lookup: %w", err)
	}
	return lookup, nil
}

// ReadProperties loads the persisted global properties. A missing file
// yields the zero-valued properties rather than an error: the store is
// created on first save.
func ReadProperties(path string) (props.Properties, error) {
	var p props.Properties
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return p, nil
	}
	if err := readJSON(path, &p); err != nil {
		return p, fmt.Errorf("global properties: %w", err)
	}
	return p, nil
}

// WriteProperties persists the global properties as JSON.
func WriteProperties(path string, p props.Properties) error {
	if err := writeJSON(path, p); err != nil {
		return fmt.Errorf("global properties: %w", err)
	}
	return nil
}

// ReadPanels loads the panel list from JSON.
func ReadPanels(path string) ([]zone.Panel, error) {
	var panels []zone.Panel
	if err := readJSON(path, &panels); err != nil {
		return nil, fmt.Errorf("panels: %w", err)
	}
	return panels, nil
}

// WritePanels stores the annotated panel list as JSON.
func WritePanels(path string, panels []zone.Panel) error {
	if err := writeJSON(path, panels); err != nil {
		return fmt.Errorf("panels: %w", err)
	}
	return nil
}

// WriteRowsJSON stores the derived stringer table as JSON, the format the
// surrounding application persists between recomputations.
func WriteRowsJSON(path string, rows []stringer.Record) error {
	if err := writeJSON(path, rows); err != nil {
		return fmt.Errorf("stringer table: %w", err)
	}
	return nil
}

// ReadRowsJSON loads a previously persisted stringer table, tolerating
// malformed numeric cells per the engine's coercion rule.
func ReadRowsJSON(path string) ([]stringer.Record, error) {
	var rows []stringer.Record
	if err := readJSON(path, &rows); err != nil {
		return nil, fmt.Errorf("stringer table: %w", err)
	}
	return rows, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}
