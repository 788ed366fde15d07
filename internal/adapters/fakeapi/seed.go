package fakeapi

import "github.com/campus-parkfinder/parkfinder/internal/domain"

// DefaultSeed is a small Minneapolis campus: one user with an unfinished profile and a
// handful of lots and ramps across the East Bank, West Bank and St. Paul campuses.
func DefaultSeed() Seed {
	return Seed{
		DefaultLogin: "goldy@umn.edu",
		Users: []domain.User{
			{ID: "1", FirstName: "Goldy", LastName: "Gopher", Email: "goldy@umn.edu"},
		},
		Spots: []domain.ParkingSpot{
			spot("1", "4th Street Ramp", "East Bank", "Ramp", 3.50, 44.9807, -93.2353),
			spot("2", "Washington Avenue Ramp", "East Bank", "Ramp", 4.25, 44.9738, -93.2300),
			spot("3", "Church Street Garage", "East Bank", "Garage", 4.75, 44.9760, -93.2336),
			spot("4", "Lot 37", "West Bank", "Surface Lot", 1.75, 44.9716, -93.2447),
			spot("5", "19th Avenue Ramp", "West Bank", "Ramp", 3.00, 44.9700, -93.2430),
			spot("6", "Gortner Avenue Ramp", "St. Paul", "Ramp", 2.50, 44.9852, -93.1853),
			spot("7", "Lot S108", "St. Paul", "Surface Lot", 1.25, 44.9866, -93.1815),
			spot("8", "Oak Street Meters", "East Bank", "Street Meter", 2.00, 44.9746, -93.2276),
		},
	}
}

func spot(id, name, campus, kind string, cost, lat, lng float64) domain.ParkingSpot {
	return domain.ParkingSpot{
		ID:             domain.SpotID(id),
		Name:           name,
		CampusLocation: campus,
		ParkingType:    kind,
		Cost:           cost,
		Latitude:       &lat,
		Longitude:      &lng,
	}
}
