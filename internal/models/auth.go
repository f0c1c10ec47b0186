package models

// Credentials is the request body shared by signup and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupResult struct {
	Message string `json:"message"`
}

type LoginResult struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
}
