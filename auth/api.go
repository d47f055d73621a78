package auth

import (
	"context"

	"github.com/pkg/errors"

	"github.com/otonaba/otonaba-cli/transport"
)

// authResponse is the wire shape of the login/register endpoints. Some backend
// revisions answer 200 with success=false instead of an error status, so the
// flag and message ride along with the token.
type authResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// Login exchanges credentials for an AuthResult. A rejected login surfaces as
// *AuthError carrying the backend's message.
func Login(ctx context.Context, c *transport.Client, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.Post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, asAuthError(err, "login failed")
	}
	return resp.result("login failed")
}

// Register creates an account and logs it in, with the same contract as Login.
func Register(ctx context.Context, c *transport.Client, reg Registration) (*AuthResult, error) {
	var resp authResponse
	if err := c.Post(ctx, "/auth/register", reg, &resp); err != nil {
		return nil, asAuthError(err, "registration failed")
	}
	return resp.result("registration failed")
}

// GetProfile fetches the authenticated user's own profile.
func GetProfile(ctx context.Context, c *transport.Client) (*User, error) {
	var user User
	if err := c.Get(ctx, "/auth/profile", nil, &user); err != nil {
		return nil, errors.Wrap(err, "[auth.GetProfile]")
	}
	return &user, nil
}

// UpdateProfile replaces the mutable profile fields and returns the updated
// user as the backend now sees it.
func UpdateProfile(ctx context.Context, c *transport.Client, update ProfileUpdate) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.Put(ctx, "/auth/profile", update, &resp); err != nil {
		return nil, errors.Wrap(err, "[auth.UpdateProfile]")
	}
	return &resp.User, nil
}

// ChangePassword replaces the account password after verifying the current one.
func ChangePassword(ctx context.Context, c *transport.Client, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	if err := c.Put(ctx, "/auth/change-password", body, nil); err != nil {
		return errors.Wrap(err, "[auth.ChangePassword]")
	}
	return nil
}

func (r authResponse) result(fallback string) (*AuthResult, error) {
	if r.Success != nil && !*r.Success {
		message := r.Message
		if message == "" {
			message = fallback
		}
		return nil, &AuthError{Message: message}
	}
	return &AuthResult{Token: r.Token, User: r.User}, nil
}

// asAuthError converts a backend rejection into *AuthError so callers present
// the server's wording. Transport failures pass through untouched.
func asAuthError(err error, fallback string) error {
	var apiErr *transport.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		return &AuthError{Message: message}
	}
	return err
}
