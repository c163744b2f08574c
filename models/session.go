package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the pair of credentials identifying the authenticated user:
// a short-lived access token attached to every request and a longer-lived
// refresh token used to obtain a new access token without re-authenticating.
//
// The session store owns the value; the API adapter only reads it per request
// and replaces it once after a successful refresh.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Authorization returns the value for the Authorization header,
// e.g. "Bearer eyJhb...". An empty TokenType defaults to "Bearer".
func (s Session) Authorization() string {
	tokenType := s.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + s.AccessToken
}

// AccessTokenExpiresAt extracts the "exp" claim from the access token without
// verifying the signature (the client has no signing key; verification is the
// server's job). Returns an error if the token cannot be parsed or carries no
// expiry claim.
func (s Session) AccessTokenExpiresAt() (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, jwt.ErrTokenInvalidClaims
	}

	return exp.Time, nil
}
