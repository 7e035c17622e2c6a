package main

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// kmPerDegree converts kilometres to degrees of latitude.
const kmPerDegree = 111.0

// pointSampler places random points within radiusKm of a center using an
// equirectangular approximation. Good enough for city-scale radii.
type pointSampler struct {
	rng      *rand.Rand
	radiusKm float64
}

func newPointSampler(rng *rand.Rand, radiusKm float64) (*pointSampler, error) {
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return nil, fmt.Errorf("invalid sampling radius: %v km", radiusKm)
	}
	return &pointSampler{rng: rng, radiusKm: radiusKm}, nil
}

func (s *pointSampler) sample(center GeoPoint) GeoPoint {
	dist := s.rng.Float64() * s.radiusKm
	angle := s.rng.Float64() * 360
	return offsetPoint(center, dist, angle)
}

// offsetPoint moves distKm away from center along angleDeg (0 is north,
// 90 is east). Longitude is stretched by 1/cos(center latitude).
func offsetPoint(center GeoPoint, distKm, angleDeg float64) GeoPoint {
	deg := distKm / kmPerDegree
	rad := angleDeg * math.Pi / 180
	lat := center.Latitude + deg*math.Cos(rad)
	lon := center.Longitude + deg*math.Sin(rad)/math.Cos(center.Latitude*math.Pi/180)
	return GeoPoint{Latitude: roundCoord(lat), Longitude: roundCoord(lon)}
}

func roundCoord(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
