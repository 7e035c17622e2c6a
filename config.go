package main

const (
	fleetSize       = 100
	defaultRadiusKm = 25.0
	jsonIndent      = "    "
)

// cityCenter is central London.
var cityCenter = GeoPoint{Latitude: 51.5074, Longitude: -0.1278}
