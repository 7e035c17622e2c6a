package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// decodeFleet reads a document produced by writeFleet. Every key is
// required; a missing or mistyped field fails the whole document.
func decodeFleet(r io.Reader) ([]VehicleRecord, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decode fleet: %w", err)
	}
	root, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("decode fleet: top level is %T, want array", doc)
	}
	fleet := make([]VehicleRecord, 0, len(root))
	for i, item := range root {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d: not an object", i)
		}
		rec, err := recordFrom(obj)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		fleet = append(fleet, rec)
	}
	return fleet, nil
}

func recordFrom(m map[string]any) (VehicleRecord, error) {
	var (
		rec VehicleRecord
		err error
	)
	if rec.Unit, err = intField(m, "unit"); err != nil {
		return rec, err
	}
	strs := []struct {
		key string
		dst *string
	}{
		{"comment", &rec.Comment},
		{"label", &rec.Label},
		{"manufacturerName", &rec.ManufacturerName},
		{"colour", &rec.Colour},
		{"model", &rec.Model},
		{"identifier", &rec.Identifier},
		{"owner", &rec.Owner},
	}
	for _, s := range strs {
		if *s.dst, err = stringField(m, s.key); err != nil {
			return rec, err
		}
	}
	if rec.IsOperational, err = boolField(m, "isOperational"); err != nil {
		return rec, err
	}
	loc, ok := m["location"].(map[string]any)
	if !ok {
		return rec, fieldError(m, "location", "object")
	}
	if rec.Location.Latitude, err = floatField(loc, "latitude"); err != nil {
		return rec, fmt.Errorf("location: %w", err)
	}
	if rec.Location.Longitude, err = floatField(loc, "longitude"); err != nil {
		return rec, fmt.Errorf("location: %w", err)
	}
	return rec, nil
}

func stringField(m map[string]any, key string) (string, error) {
	if s, ok := m[key].(string); ok {
		return s, nil
	}
	return "", fieldError(m, key, "string")
}

func boolField(m map[string]any, key string) (bool, error) {
	if v, ok := m[key].(bool); ok {
		return v, nil
	}
	return false, fieldError(m, key, "boolean")
}

func floatField(m map[string]any, key string) (float64, error) {
	if v, ok := m[key].(float64); ok {
		return v, nil
	}
	return 0, fieldError(m, key, "number")
}

func intField(m map[string]any, key string) (int, error) {
	v, ok := m[key].(float64)
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, fieldError(m, key, "integer")
	}
	return int(v), nil
}

func fieldError(m map[string]any, key, want string) error {
	v, ok := m[key]
	if !ok {
		return fmt.Errorf("missing %q", key)
	}
	return fmt.Errorf("%q is %T, want %s", key, v, want)
}
