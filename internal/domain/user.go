package domain

// DefaultAvatarURL is shown when the backend has no profile picture for the user.
const DefaultAvatarURL = "https://via.placeholder.com/48"

// User is the client-side view of the authenticated user.
// Identity fields come from the login provider; profile fields are filled in by the user
// and are all optional.
type User struct {
	ID UserID

	FirstName  string
	LastName   string
	Email      string
	ProfilePic *string

	Major          *string
	GradeLevel     *string
	GraduationYear *int
	HousingType    *string

	PreferredParkingTypes []string
}

// DisplayName is "first last" with whitespace normalized.
func (u User) DisplayName() string {
	return NormalizeHumanName(u.FirstName + " " + u.LastName)
}

// AvatarURL returns the profile picture, or DefaultAvatarURL when unset or empty.
func (u User) AvatarURL() string {
	if isBlank(u.ProfilePic) {
		return DefaultAvatarURL
	}
	return *u.ProfilePic
}

// MissingProfileFields lists the required profile fields that are absent or empty, using
// the backend's JSON field names.
func (u User) MissingProfileFields() []string {
	var missing []string
	if isBlank(u.Major) {
		missing = append(missing, "major")
	}
	if isBlank(u.GradeLevel) {
		missing = append(missing, "grade_level")
	}
	if isBlank(u.HousingType) {
		missing = append(missing, "housing_type")
	}
	return missing
}

// IsProfileComplete reports whether major, grade level and housing type are all present.
// Graduation year is not required.
func (u User) IsProfileComplete() bool {
	return len(u.MissingProfileFields()) == 0
}

func isBlank(p *string) bool {
	return p == nil || *p == ""
}
