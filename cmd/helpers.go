package cmd

import (
	"os"

	"github.com/fubueng/gostringer/internal/geometry"
	"github.com/fubueng/gostringer/internal/props"
	"github.com/fubueng/gostringer/internal/stringer"
	"github.com/fubueng/gostringer/internal/table"
	"github.com/fubueng/gostringer/internal/zone"
)

// pick returns the flag value when set, the configured default otherwise.
func pick(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}

// loadDeriveInputs resolves the three derive inputs against the config
// defaults and loads them. The lookup and properties stores are optional;
// absent files yield empty values per the engine's degrade-to-zero rules.
func loadDeriveInputs(rowsPath, lookupPath, propsPath string) ([]stringer.Record, geometry.Lookup, props.Properties, error) {
	rows, err := loadRows(pick(rowsPath, cfg.Data.RowsCSV))
	if err != nil {
		return nil, nil, props.Properties{}, err
	}

	lookup := geometry.Lookup{}
	lp := pick(lookupPath, cfg.Data.Lookup)
	if _, statErr := os.Stat(lp); statErr == nil {
		lookup, err = table.ReadLookup(lp)
		if err != nil {
			return nil, nil, props.Properties{}, err
		}
	}

	p, err := table.ReadProperties(pick(propsPath, cfg.Data.Properties))
	if err != nil {
		return nil, nil, props.Properties{}, err
	}

	return rows, lookup, p, nil
}

// loadRows reads the stringer table, accepting either the CSV source
// table or a previously persisted JSON table.
func loadRows(path string) ([]stringer.Record, error) {
	if isJSONPath(path) {
		return table.ReadRowsJSON(path)
	}
	return table.ReadRows(path)
}

func isJSONPath(path string) bool {
	return len(path) > 5 && path[len(path)-5:] == ".json"
}

// loadOptionalRows loads the persisted stringer table, treating a missing
// store as an empty table.
func loadOptionalRows(path string) ([]stringer.Record, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return loadRows(path)
}

// loadOptionalPanels loads the panel list, treating a missing store as an
// empty list.
func loadOptionalPanels(path string) ([]zone.Panel, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return table.ReadPanels(path)
}
