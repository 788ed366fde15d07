package apiwire

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oapi-codegen/nullable"

	"github.com/campus-parkfinder/parkfinder/internal/domain"
)

// UserToDomain maps the wire user. Null and absent optional fields become nil, as does a
// graduation year that is not a whole number.
func UserToDomain(u User) domain.User {
	return domain.User{
		ID:                    domain.UserID(idString(u.ID)),
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		Email:                 u.Email,
		ProfilePic:            optional(u.ProfilePic),
		Major:                 optional(u.Major),
		GradeLevel:            optional(u.GradeLevel),
		GraduationYear:        parseYear(u.GraduationYear),
		HousingType:           optional(u.HousingType),
		PreferredParkingTypes: parseParkingTypes(u.PreferredParkingTypes),
	}
}

// UserFromDomain is the inverse of UserToDomain. Unset optional fields are sent as null.
func UserFromDomain(u domain.User) User {
	out := User{
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		ProfilePic:  fromPtr(u.ProfilePic),
		Major:       fromPtr(u.Major),
		GradeLevel:  fromPtr(u.GradeLevel),
		HousingType: fromPtr(u.HousingType),
	}
	if u.ID != "" {
		out.ID = string(u.ID)
	}
	if u.GraduationYear != nil {
		out.GraduationYear = json.RawMessage(strconv.Itoa(*u.GraduationYear))
	} else {
		out.GraduationYear = json.RawMessage("null")
	}
	if u.PreferredParkingTypes != nil {
		raw, err := json.Marshal(u.PreferredParkingTypes)
		if err == nil {
			out.PreferredParkingTypes = raw
		}
	}
	return out
}

func SpotToDomain(s Spot) domain.ParkingSpot {
	return domain.ParkingSpot{
		ID:             domain.SpotID(idString(s.ID)),
		Name:           s.Name,
		CampusLocation: s.CampusLocation,
		ParkingType:    s.ParkingType,
		Cost:           s.Cost,
		Latitude:       optional(s.Latitude),
		Longitude:      optional(s.Longitude),
	}
}

func SpotFromDomain(s domain.ParkingSpot) Spot {
	return Spot{
		ID:             string(s.ID),
		Name:           s.Name,
		CampusLocation: s.CampusLocation,
		ParkingType:    s.ParkingType,
		Cost:           s.Cost,
		Latitude:       fromPtr(s.Latitude),
		Longitude:      fromPtr(s.Longitude),
	}
}

func SpotsToDomain(in []Spot) []domain.ParkingSpot {
	out := make([]domain.ParkingSpot, 0, len(in))
	for _, s := range in {
		out = append(out, SpotToDomain(s))
	}
	return out
}

func SpotsFromDomain(in []domain.ParkingSpot) []Spot {
	out := make([]Spot, 0, len(in))
	for _, s := range in {
		out = append(out, SpotFromDomain(s))
	}
	return out
}

func optional[T any](n nullable.Nullable[T]) *T {
	v, err := n.Get()
	if err != nil {
		return nil
	}
	return &v
}

func fromPtr[T any](p *T) nullable.Nullable[T] {
	if p == nil {
		return nullable.NewNullNullable[T]()
	}
	return nullable.NewNullableWithValue(*p)
}

// idString renders JSON ids: numbers decode as float64 and print without a fraction.
func idString(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	default:
		return fmt.Sprint(id)
	}
}

// parseYear accepts a JSON number with no fraction or a string holding one.
func parseYear(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	switch y := v.(type) {
	case float64:
		if y != math.Trunc(y) || math.Abs(y) > math.MaxInt32 {
			return nil
		}
		n := int(y)
		return &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(y))
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}

func parseParkingTypes(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var csv string
	if err := json.Unmarshal(raw, &csv); err != nil {
		return nil
	}
	var out []string
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
