// Package apiwire holds the JSON shapes of the parking backend's REST contract and their
// mapping to domain types. Both the HTTP client and the contract stub server use it.
package apiwire

import (
	"encoding/json"

	"github.com/oapi-codegen/nullable"
)

// User is the backend's user dictionary. Optional fields are null or absent when unset.
type User struct {
	ID        any    `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	ProfilePic  nullable.Nullable[string] `json:"profile_pic,omitempty"`
	Major       nullable.Nullable[string] `json:"major,omitempty"`
	GradeLevel  nullable.Nullable[string] `json:"grade_level,omitempty"`
	HousingType nullable.Nullable[string] `json:"housing_type,omitempty"`

	// GraduationYear is usually a number but older rows hold it as a string.
	GraduationYear json.RawMessage `json:"graduation_year,omitempty"`

	// PreferredParkingTypes is either a JSON array of strings or a comma-separated string.
	PreferredParkingTypes json.RawMessage `json:"preferred_parking_types,omitempty"`
}

// CurrentUserResponse is the body of GET /api/current-user.
type CurrentUserResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user"`
}

// UpdateProfileRequest is the body of POST /api/update-profile.
// GraduationYear must always be set: a value, or null when the form held no number.
type UpdateProfileRequest struct {
	Major          string                 `json:"major"`
	GradeLevel     string                 `json:"grade_level"`
	GraduationYear nullable.Nullable[int] `json:"graduation_year"`
	HousingType    string                 `json:"housing_type"`

	PreferredParkingTypes []string `json:"preferred_parking_types,omitempty"`
}

// StatusResponse is the envelope of mutating calls and of errors.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// Spot is the backend's parking spot dictionary.
type Spot struct {
	ID             any     `json:"id"`
	Name           string  `json:"name"`
	CampusLocation string  `json:"campus_location"`
	ParkingType    string  `json:"parking_type"`
	Cost           float64 `json:"cost"`

	Latitude  nullable.Nullable[float64] `json:"latitude,omitempty"`
	Longitude nullable.Nullable[float64] `json:"longitude,omitempty"`
}

// SpotsResponse is the body of the spot listing endpoints.
type SpotsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Count   int    `json:"count"`
	Data    []Spot `json:"data"`
}
