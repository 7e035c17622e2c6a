package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	identifierAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	identifierLength   = 6
	minUnit            = 10
	maxUnit            = 99
)

type recordFactory struct {
	rng     *rand.Rand
	catalog Catalog
	sampler *pointSampler
	center  GeoPoint
}

func newRecordFactory(rng *rand.Rand, catalog Catalog, sampler *pointSampler, center GeoPoint) *recordFactory {
	return &recordFactory{
		rng:     rng,
		catalog: catalog,
		sampler: sampler,
		center:  center,
	}
}

func (f *recordFactory) build() VehicleRecord {
	m := f.catalog.Manufacturers[f.rng.IntN(len(f.catalog.Manufacturers))]
	model := m.Models[f.rng.IntN(len(m.Models))]
	colour := f.catalog.Colours[f.rng.IntN(len(f.catalog.Colours))]
	owner := f.catalog.Owners[f.rng.IntN(len(f.catalog.Owners))]
	loc := f.sampler.sample(f.center)
	id := f.identifier()
	label := carLabel(m.Name, model, id)

	return VehicleRecord{
		Unit:             minUnit + f.rng.IntN(maxUnit-minUnit+1),
		Comment:          carComment(label),
		Label:            label,
		ManufacturerName: m.Name,
		Colour:           colour,
		Model:            model,
		Identifier:       id,
		Owner:            owner,
		IsOperational:    f.rng.IntN(2) == 1,
		Location:         loc,
	}
}

// identifier draws with replacement; batches may contain duplicates.
func (f *recordFactory) identifier() string {
	var b strings.Builder
	b.Grow(identifierLength)
	for range identifierLength {
		b.WriteByte(identifierAlphabet[f.rng.IntN(len(identifierAlphabet))])
	}
	return b.String()
}

func carLabel(manufacturer, model, identifier string) string {
	return fmt.Sprintf("Car-%s-%s-%s", manufacturer, model, identifier)
}

func carComment(label string) string {
	return "A car digital twin labelled " + label
}
