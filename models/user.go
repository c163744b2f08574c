package models

// User is the account record as the backend reports it.
type User struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
