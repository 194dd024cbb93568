package domain

// AuthResult is what a successful registration or login hands back: the
// access token and the profile of the user it was issued for.
type AuthResult struct {
	AccessToken string      `json:"accessToken"`
	User        UserProfile `json:"user"`
}
