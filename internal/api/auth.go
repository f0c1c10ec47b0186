package api

import (
	"context"
	"net/http"

	"github.com/salmatarekx/EventPlanner/internal/logger"
	"github.com/salmatarekx/EventPlanner/internal/models"
)

// AuthClient talks to the authentication endpoints. Neither call carries a
// bearer token; the caller persists the token a successful login returns.
type AuthClient struct {
	BaseURL string
	Client  *http.Client
	Logger  *logger.Logger
}

func NewAuthClient(baseURL string, client *http.Client, log *logger.Logger) *AuthClient {
	return &AuthClient{
		BaseURL: trimBase(baseURL),
		Client:  client,
		Logger:  log,
	}
}

func (c *AuthClient) Signup(ctx context.Context, email, password string) (*models.SignupResult, error) {
	var result models.SignupResult
	err := doJSON(ctx, c.Client, c.Logger, http.MethodPost, c.BaseURL+"/signup", "",
		models.Credentials{Email: email, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *AuthClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var result models.LoginResult
	err := doJSON(ctx, c.Client, c.Logger, http.MethodPost, c.BaseURL+"/login", "",
		models.Credentials{Email: email, Password: password}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
