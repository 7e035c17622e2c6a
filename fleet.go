package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

func generateFleet(f *recordFactory, n int) []VehicleRecord {
	fleet := make([]VehicleRecord, 0, n)
	for range n {
		fleet = append(fleet, f.build())
	}
	return fleet
}

// writeFleet encodes the whole batch and reads it back before touching w, so
// either the full, lossless document is written or nothing is.
func writeFleet(w io.Writer, fleet []VehicleRecord) error {
	if fleet == nil {
		fleet = []VehicleRecord{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", jsonIndent)
	if err := enc.Encode(fleet); err != nil {
		return fmt.Errorf("encode fleet: %w", err)
	}
	decoded, err := decodeFleet(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return fmt.Errorf("re-read fleet: %w", err)
	}
	if !slices.Equal(decoded, fleet) {
		return errors.New("fleet does not survive a JSON round trip")
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write fleet: %w", err)
	}
	return nil
}

func checkFleet(c Catalog, fleet []VehicleRecord) error {
	for i, rec := range fleet {
		if err := checkRecord(c, rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// checkRecord reports the first field of rec that could not have come from c.
func checkRecord(c Catalog, rec VehicleRecord) error {
	models, ok := c.models(rec.ManufacturerName)
	if !ok {
		return fmt.Errorf("unknown manufacturer %q", rec.ManufacturerName)
	}
	if !slices.Contains(models, rec.Model) {
		return fmt.Errorf("model %q is not made by %s", rec.Model, rec.ManufacturerName)
	}
	if !c.hasColour(rec.Colour) {
		return fmt.Errorf("unknown colour %q", rec.Colour)
	}
	if !c.hasOwner(rec.Owner) {
		return fmt.Errorf("unknown owner %q", rec.Owner)
	}
	if err := checkIdentifier(rec.Identifier); err != nil {
		return err
	}
	if rec.Unit < minUnit || rec.Unit > maxUnit {
		return fmt.Errorf("unit %d out of range [%d, %d]", rec.Unit, minUnit, maxUnit)
	}
	if want := carLabel(rec.ManufacturerName, rec.Model, rec.Identifier); rec.Label != want {
		return fmt.Errorf("label %q, want %q", rec.Label, want)
	}
	if want := carComment(rec.Label); rec.Comment != want {
		return fmt.Errorf("comment %q, want %q", rec.Comment, want)
	}
	return nil
}

func checkIdentifier(id string) error {
	if len(id) != identifierLength {
		return fmt.Errorf("identifier %q is not %d characters", id, identifierLength)
	}
	for i := 0; i < len(id); i++ {
		if !isIdentifierChar(id[i]) {
			return fmt.Errorf("identifier %q has characters outside A-Z0-9", id)
		}
	}
	return nil
}

func isIdentifierChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
