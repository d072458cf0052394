package domain

// TokenPair is what a successful login yields: a short-lived access token and
// the refresh token used to mint replacements for it.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
