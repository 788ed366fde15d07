package backend

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// Query parameter names of the spot filter endpoint.
const (
	ParamCampus  = "campus"
	ParamType    = "type"
	ParamMaxCost = "max_cost"
)

// Query encodes f as a form-style query string (no leading "?"). Empty fields are omitted,
// present ones are URL-encoded. The parameter order is campus, type, max_cost.
func (f SpotFilter) Query() (string, error) {
	var parts []string
	add := func(name string, value any) error {
		p, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		parts = append(parts, p)
		return nil
	}
	if f.Campus != "" {
		if err := add(ParamCampus, f.Campus); err != nil {
			return "", err
		}
	}
	if f.ParkingType != "" {
		if err := add(ParamType, f.ParkingType); err != nil {
			return "", err
		}
	}
	if f.MaxCost != nil {
		if err := add(ParamMaxCost, *f.MaxCost); err != nil {
			return "", err
		}
	}
	return strings.Join(parts, "&"), nil
}

// Values is Query parsed back into url.Values.
func (f SpotFilter) Values() (url.Values, error) {
	q, err := f.Query()
	if err != nil {
		return nil, err
	}
	return url.ParseQuery(q)
}
