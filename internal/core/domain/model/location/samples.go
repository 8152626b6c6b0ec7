package location

import "cargotracker/internal/core/domain/model/kernel"

// Sample locations, shared by the sample data loader and by tests.
var (
	HongKong   = mustLocation("CNHKG", "Hongkong")
	Melbourne  = mustLocation("AUMEL", "Melbourne")
	Stockholm  = mustLocation("SESTO", "Stockholm")
	Helsinki   = mustLocation("FIHEL", "Helsinki")
	Chicago    = mustLocation("USCHI", "Chicago")
	Tokyo      = mustLocation("JNTKO", "Tokyo")
	Hamburg    = mustLocation("DEHAM", "Hamburg")
	Shanghai   = mustLocation("CNSHA", "Shanghai")
	Rotterdam  = mustLocation("NLRTM", "Rotterdam")
	Gothenburg = mustLocation("SEGOT", "Göteborg")
	Hangzhou   = mustLocation("CNHGH", "Hangzhou")
	NewYork    = mustLocation("USNYC", "New York")
	Dallas     = mustLocation("USDAL", "Dallas")
)

// Samples returns all sample locations.
func Samples() []Location {
	return []Location{
		HongKong, Melbourne, Stockholm, Helsinki, Chicago, Tokyo, Hamburg,
		Shanghai, Rotterdam, Gothenburg, Hangzhou, NewYork, Dallas,
	}
}

// LookupSample finds a sample location by its UN locode.
// The second return value reports whether a sample with that locode exists.
func LookupSample(unLocode kernel.UnLocode) (Location, bool) {
	for _, sample := range Samples() {
		if equal, err := sample.UnLocode().IsEqual(unLocode); err == nil && equal {
			return sample, true
		}
	}
	return Location{}, false
}

func mustLocation(unLocode string, name string) Location {
	locode, err := kernel.NewUnLocode(unLocode)
	if err != nil {
		panic(err)
	}

	loc, err := NewLocation(locode, name)
	if err != nil {
		panic(err)
	}

	return loc
}
