package main

// GeoPoint is a latitude/longitude pair rounded to 6 decimal places.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VehicleRecord is one car digital twin as emitted on stdout.
// Field order is the key order of the JSON document.
type VehicleRecord struct {
	Unit             int      `json:"unit"`
	Comment          string   `json:"comment"`
	Label            string   `json:"label"`
	ManufacturerName string   `json:"manufacturerName"`
	Colour           string   `json:"colour"`
	Model            string   `json:"model"`
	Identifier       string   `json:"identifier"`
	Owner            string   `json:"owner"`
	IsOperational    bool     `json:"isOperational"`
	Location         GeoPoint `json:"location"`
}
