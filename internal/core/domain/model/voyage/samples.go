package voyage

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// Sample voyages, shared by the sample data loader and by tests.
var (
	// V100: Hongkong - Tokyo - New York.
	V100 = mustVoyage("V100", location.HongKong,
		sampleMovement{location.Tokyo, day(1), day(3)},
		sampleMovement{location.NewYork, day(4), day(7)},
	)

	// V200: New York - Chicago - Dallas.
	V200 = mustVoyage("V200", location.NewYork,
		sampleMovement{location.Chicago, day(8), day(10)},
		sampleMovement{location.Dallas, day(11), day(13)},
	)

	// V300: Shanghai - Rotterdam - Göteborg.
	V300 = mustVoyage("V300", location.Shanghai,
		sampleMovement{location.Rotterdam, day(2), day(8)},
		sampleMovement{location.Gothenburg, day(9), day(12)},
	)
)

// Samples returns all sample voyages.
func Samples() []Voyage {
	return []Voyage{V100, V200, V300}
}

// LookupSample finds a sample voyage by its number.
// The second return value reports whether a sample with that number exists.
func LookupSample(voyageNumber kernel.VoyageNumber) (Voyage, bool) {
	for _, sample := range Samples() {
		if equal, err := sample.VoyageNumber().IsEqual(voyageNumber); err == nil && equal {
			return sample, true
		}
	}
	return Voyage{}, false
}

type sampleMovement struct {
	arrival   location.Location
	departure time.Time
	arrivalAt time.Time
}

func day(n int) time.Time {
	return time.Date(2009, time.March, n, 12, 0, 0, 0, time.UTC)
}

func mustVoyage(number string, departure location.Location, movements ...sampleMovement) Voyage {
	voyageNumber, err := kernel.NewVoyageNumber(number)
	if err != nil {
		panic(err)
	}

	builder := NewBuilder(voyageNumber, departure)
	for _, movement := range movements {
		builder.AddMovement(movement.arrival, movement.departure, movement.arrivalAt)
	}

	voyage, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return voyage
}
