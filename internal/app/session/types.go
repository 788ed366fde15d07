package session

import (
	"strconv"
	"strings"
)

// User-facing messages.
const (
	MsgProfileUpdated      = "Profile updated successfully!"
	MsgProfileFailed       = "Failed to update profile"
	msgProfileFailedPrefix = "Failed to update profile: "
)

// ProfileForm holds the raw values of the profile-completion form.
type ProfileForm struct {
	Major          string
	GradeLevel     string
	GraduationYear string
	HousingType    string

	// PreferredParkingTypes is optional; nil means the form has no such control.
	PreferredParkingTypes []string
}

// ParseGraduationYear reads the leading integer of raw, ignoring leading whitespace and
// any trailing text ("2027", " 2027 ", "2027-ish" all give 2027). It returns nil when raw
// does not start with a number.
func ParseGraduationYear(raw string) *int {
	s := strings.TrimLeft(raw, " \t\n\r\f\v")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return nil
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &v
}
