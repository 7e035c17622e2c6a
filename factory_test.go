package main

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var identifierRe = regexp.MustCompile(`^[A-Z0-9]{6}$`)

func newTestFactory(t *testing.T, seed uint64) (*recordFactory, Catalog) {
	t.Helper()
	c, err := loadCatalog()
	require.NoError(t, err)
	rng := testRand(seed)
	s, err := newPointSampler(rng, defaultRadiusKm)
	require.NoError(t, err)
	return newRecordFactory(rng, c, s, cityCenter), c
}

func TestRecordFactoryBuild(t *testing.T) {
	f, c := newTestFactory(t, 10)

	for i := 0; i < 1000; i++ {
		rec := f.build()
		require.NoError(t, checkRecord(c, rec))

		models, ok := c.models(rec.ManufacturerName)
		require.True(t, ok)
		require.Contains(t, models, rec.Model)
		require.Contains(t, c.Colours, rec.Colour)
		require.Contains(t, c.Owners, rec.Owner)
		require.Regexp(t, identifierRe, rec.Identifier)
		require.GreaterOrEqual(t, rec.Unit, 10)
		require.LessOrEqual(t, rec.Unit, 99)
		require.Equal(t, "Car-"+rec.ManufacturerName+"-"+rec.Model+"-"+rec.Identifier, rec.Label)
		require.Equal(t, "A car digital twin labelled "+rec.Label, rec.Comment)
		require.LessOrEqual(t, planarKm(cityCenter, rec.Location), defaultRadiusKm+1e-3)
	}
}

func TestRecordFactoryCoversTables(t *testing.T) {
	f, c := newTestFactory(t, 11)

	manufacturers := map[string]bool{}
	colours := map[string]bool{}
	units := map[int]bool{}
	operational := map[bool]bool{}
	for i := 0; i < 5000; i++ {
		rec := f.build()
		manufacturers[rec.ManufacturerName] = true
		colours[rec.Colour] = true
		units[rec.Unit] = true
		operational[rec.IsOperational] = true
	}
	require.Len(t, manufacturers, len(c.Manufacturers))
	require.Len(t, colours, len(c.Colours))
	require.Len(t, units, 90)
	require.Len(t, operational, 2)
}

func TestRecordFactoryDeterministic(t *testing.T) {
	a, _ := newTestFactory(t, 12)
	b, _ := newTestFactory(t, 12)
	require.Equal(t, generateFleet(a, 20), generateFleet(b, 20))
}
