package domain

import "time"

// ParkingSpot is one row of a spot search. Fields the backend omits stay at their zero value.
type ParkingSpot struct {
	ID             SpotID
	Name           string
	CampusLocation string
	ParkingType    string
	Cost           float64

	Latitude  *float64
	Longitude *float64
}

// SpotSearch is the outcome of one filter request.
type SpotSearch struct {
	Criteria  FilterCriteria
	Count     int
	Spots     []ParkingSpot
	FetchedAt time.Time
}
