package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

type AuthAPI struct {
	c *Client
}

// Login exchanges credentials for a token and keeps the token on the client.
// The token and user may sit inside data or at the top level.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (models.AdminLoginResponse, error) {
	var out models.AdminLoginResponse
	env, err := a.c.do(ctx, http.MethodPost, "/auth/login", models.AdminLoginRequest{Email: email, Password: password})
	if err != nil {
		return out, err
	}

	if raw, ok := env.object("auth"); ok {
		_ = json.Unmarshal(raw, &out)
	}
	if out.Token == "" {
		out.Token = env.stringField("token")
	}
	if out.User.ID == "" {
		for _, key := range []string{"user", "admin"} {
			if raw, ok := asObject(env.fields[key]); ok {
				_ = json.Unmarshal(raw, &out.User)
				break
			}
		}
	}
	if out.Token == "" {
		return out, errors.New("login: response carried no token")
	}

	a.c.SetToken(out.Token)
	return out, nil
}

// Profile validates the stored token and returns its admin.
func (a *AuthAPI) Profile(ctx context.Context) (models.AdminResponse, error) {
	var me models.AdminResponse
	env, err := a.c.do(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return me, err
	}
	raw, ok := env.object("user")
	if !ok {
		return me, errors.New("profile: response carried no user")
	}
	if err := json.Unmarshal(raw, &me); err != nil {
		return me, err
	}
	return me, nil
}

// Logout drops the token locally even when the server call fails.
func (a *AuthAPI) Logout(ctx context.Context) error {
	_, err := a.c.do(ctx, http.MethodPost, "/auth/logout", nil)
	a.c.SetToken("")
	return err
}
