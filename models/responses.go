package models

// SessionResponse is the success body of the register, login and refresh
// endpoints: the new session's token fields plus the account they belong to
// (the refresh endpoint omits the user).
type SessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	User         User   `json:"user"`
}

// Session extracts the token fields as a [Session] value.
func (r SessionResponse) Session() Session {
	return Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		TokenType:    r.TokenType,
	}
}
