package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	c, err := loadCatalog()
	require.NoError(t, err)

	require.Len(t, c.Manufacturers, 14)
	for _, m := range c.Manufacturers {
		require.Len(t, m.Models, 6, m.Name)
	}
	require.Len(t, c.Colours, 8)
	require.Len(t, c.Owners, 50)

	models, ok := c.models("Fiat")
	require.True(t, ok)
	require.Equal(t, []string{"500", "Panda", "Tipo", "Punto", "Doblo", "124 Spider"}, models)

	_, ok = c.models("Tesla")
	require.False(t, ok)

	require.True(t, c.hasColour("Pink"))
	require.False(t, c.hasColour("Purple"))
	require.True(t, c.hasOwner("Emma Torres"))
	require.False(t, c.hasOwner("Emma"))
}

func TestParseCatalogErrors(t *testing.T) {
	for _, ca := range []struct {
		name string
		doc  string
	}{
		{
			"invalid yaml",
			"manufacturers: [",
		},
		{
			"no manufacturers",
			"colours: [Red]\nowners: [Jane Doe]\n",
		},
		{
			"no colours",
			"manufacturers:\n  - name: Kia\n    models: [Soul]\nowners: [Jane Doe]\n",
		},
		{
			"no owners",
			"manufacturers:\n  - name: Kia\n    models: [Soul]\ncolours: [Red]\n",
		},
		{
			"no models",
			"manufacturers:\n  - name: Kia\ncolours: [Red]\nowners: [Jane Doe]\n",
		},
		{
			"unnamed manufacturer",
			"manufacturers:\n  - models: [Soul]\ncolours: [Red]\nowners: [Jane Doe]\n",
		},
		{
			"duplicate manufacturer",
			"manufacturers:\n  - name: Kia\n    models: [Soul]\n  - name: Kia\n    models: [Rio]\n" +
				"colours: [Red]\nowners: [Jane Doe]\n",
		},
	} {
		t.Run(ca.name, func(t *testing.T) {
			_, err := parseCatalog([]byte(ca.doc))
			require.Error(t, err)
		})
	}
}

func TestParseCatalogMinimal(t *testing.T) {
	c, err := parseCatalog([]byte("manufacturers:\n  - name: Kia\n    models: [Soul]\ncolours: [Red]\nowners: [Jane Doe]\n"))
	require.NoError(t, err)
	require.Equal(t, Catalog{
		Manufacturers: []Manufacturer{{Name: "Kia", Models: []string{"Soul"}}},
		Colours:       []string{"Red"},
		Owners:        []string{"Jane Doe"},
	}, c)
}
