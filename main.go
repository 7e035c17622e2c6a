package main

import (
	"log"
	"math/rand/v2"
	"os"
)

func main() {
	catalog, err := loadCatalog()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	rng := newEntropyRand()
	sampler, err := newPointSampler(rng, defaultRadiusKm)
	if err != nil {
		log.Fatalf("sampler: %v", err)
	}
	factory := newRecordFactory(rng, catalog, sampler, cityCenter)

	fleet := generateFleet(factory, fleetSize)
	if err := checkFleet(catalog, fleet); err != nil {
		log.Fatalf("generated fleet is invalid: %v", err)
	}
	if err := writeFleet(os.Stdout, fleet); err != nil {
		log.Fatalf("%v", err)
	}
}

// newEntropyRand seeds a PCG source from the runtime's OS-seeded generator.
func newEntropyRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
