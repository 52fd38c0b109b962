package commands

import "time"

// TokenTypeBearer is the token_type returned with every issued token.
const TokenTypeBearer = "Bearer"

// TokenPair is the result of a login or refresh. RefreshToken is empty when
// only an access token was issued.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// TokenTTLs configures how long issued tokens stay valid.
type TokenTTLs struct {
	Access  time.Duration
	Refresh time.Duration
}

// DefaultTokenTTLs are 30 minutes for access and 7 days for refresh tokens.
func DefaultTokenTTLs() TokenTTLs {
	return TokenTTLs{
		Access:  30 * time.Minute,
		Refresh: 7 * 24 * time.Hour,
	}
}
