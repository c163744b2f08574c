package models

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the account creation request body.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// CreateGalleryRequest is the body of POST /galleries.
type CreateGalleryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateGalleryRequest is the body of PUT /galleries/{id}.
type UpdateGalleryRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
