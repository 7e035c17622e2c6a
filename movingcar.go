package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"
)

const (
	earthRadiusKm = 6371.0
	minSpeedKmh   = 45.0
	maxSpeedKmh   = 55.0
	minRangeKm    = 5.0
	maxRangeKm    = 20.0
)

type locationData struct {
	Point      GeoPoint `json:"-"`
	WKTLiteral string   `json:"wktLiteral"`
	Speed      float64  `json:"speed"`
	Direction  float64  `json:"direction"`
}

type carTelemetry struct {
	Location    locationData `json:"location"`
	Operational bool         `json:"opStatus"`
}

// movingCar drives out and back along a fixed heading from its origin at a
// constant speed, turning round at rangeKm and again at the origin.
type movingCar struct {
	rng         *rand.Rand
	origin      GeoPoint
	speedKmh    float64
	rangeKm     float64
	heading     float64 // outbound, radians clockwise from north
	travelledKm float64
}

func newMovingCar(rng *rand.Rand, start GeoPoint) *movingCar {
	return &movingCar{
		rng:      rng,
		origin:   start,
		speedKmh: minSpeedKmh + rng.Float64()*(maxSpeedKmh-minSpeedKmh),
		rangeKm:  minRangeKm + rng.Float64()*(maxRangeKm-minRangeKm),
		heading:  rng.Float64() * 2 * math.Pi,
	}
}

func (c *movingCar) advance(elapsed time.Duration) carTelemetry {
	if elapsed > 0 {
		c.travelledKm += c.speedKmh * elapsed.Hours()
	}
	p := c.position()
	return carTelemetry{
		Location: locationData{
			Point:      p,
			WKTLiteral: wktPoint(p),
			Speed:      c.speedKmh,
			Direction:  c.direction(),
		},
		Operational: c.rng.IntN(2) == 1,
	}
}

func (c *movingCar) phaseKm() float64 {
	return math.Mod(c.travelledKm, 2*c.rangeKm)
}

func (c *movingCar) returning() bool {
	return c.phaseKm() > c.rangeKm
}

// offsetKm is the distance from the origin along the outbound heading.
func (c *movingCar) offsetKm() float64 {
	if p := c.phaseKm(); p > c.rangeKm {
		return 2*c.rangeKm - p
	}
	return c.phaseKm()
}

func (c *movingCar) direction() float64 {
	if c.returning() {
		return math.Mod(c.heading+math.Pi, 2*math.Pi)
	}
	return c.heading
}

func (c *movingCar) position() GeoPoint {
	d := c.offsetKm()
	dLat := d / earthRadiusKm * (180 / math.Pi)
	dLon := d / (earthRadiusKm * math.Cos(c.origin.Latitude*math.Pi/180)) * (180 / math.Pi)
	return GeoPoint{
		Latitude:  roundCoord(c.origin.Latitude + dLat*math.Cos(c.heading)),
		Longitude: roundCoord(c.origin.Longitude + dLon*math.Sin(c.heading)),
	}
}

// wktPoint keeps latitude first, as the twin host expects.
func wktPoint(p GeoPoint) string {
	return fmt.Sprintf("POINT(%s %s)",
		strconv.FormatFloat(p.Latitude, 'f', -1, 64),
		strconv.FormatFloat(p.Longitude, 'f', -1, 64))
}

// driveFleet moves a copy of every record for elapsed and redraws its
// operational status. fleet itself is left unchanged. Each call starts a
// fresh car (speed, range, heading) at the record's location, so chained
// calls are independent trips rather than one continued movement.
func driveFleet(rng *rand.Rand, fleet []VehicleRecord, elapsed time.Duration) []VehicleRecord {
	out := slices.Clone(fleet)
	for i := range out {
		car := newMovingCar(rng, out[i].Location)
		t := car.advance(elapsed)
		out[i].Location = t.Location.Point
		out[i].IsOperational = t.Operational
	}
	return out
}
