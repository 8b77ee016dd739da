package profile

// ProfileGetOutput for GET /profile
type ProfileGetOutput struct {
	Body Profile
}

// ProfileCompletenessOutput for GET /profile/completeness
type ProfileCompletenessOutput struct {
	Body Completeness
}
