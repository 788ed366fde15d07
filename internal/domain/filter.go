package domain

import "fmt"

// MaxCostCeiling is the slider's upper bound. A slider resting at the ceiling means
// "no cost cap" and is not sent to the backend.
const MaxCostCeiling = 5.0

// FilterCriteria is the transient state of the filter form.
type FilterCriteria struct {
	Campus      string
	ParkingType string
	// MaxCost is the slider position in dollars per hour.
	MaxCost float64
}

// DefaultFilterCriteria is the cleared form: no campus, no type, slider at the ceiling.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{MaxCost: MaxCostCeiling}
}

// CostCap returns the cap to send, or false when the slider is at or above the ceiling.
func (c FilterCriteria) CostCap() (float64, bool) {
	if c.MaxCost < MaxCostCeiling {
		return c.MaxCost, true
	}
	return 0, false
}

// FormatHourlyCost renders a cost the way the slider label shows it, e.g. "$5.00/hr".
func FormatHourlyCost(v float64) string {
	return fmt.Sprintf("$%.2f/hr", v)
}
