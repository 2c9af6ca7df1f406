package api

import (
	"context"
	"fmt"
	"net/http"

	"fitcoach/client/internal/domain"
)

// RegisterRequest carries the fields collected by the registration form.
type RegisterRequest struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	PhoneNumber   string  `json:"phoneNumber"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	City          string  `json:"city"`
	Goal          string  `json:"goal"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	AgreedToTerms bool    `json:"agreedToTerms"`
}

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login: the signed
// token plus the full profile of the authenticated account.
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// UpdateProfileRequest is the measurement/profile update submitted by a
// trainee. Weight is the single new sample; the backend appends it to the
// sample history server-side.
type UpdateProfileRequest struct {
	City                   string  `json:"city"`
	Age                    int     `json:"age"`
	Goal                   string  `json:"goal"`
	Height                 float64 `json:"height"`
	Weight                 float64 `json:"weight"`
	NeckCircumference      float64 `json:"neckCircumference"`
	PecsCircumference      float64 `json:"pecsCircumference"`
	ArmCircumference       float64 `json:"armCircumference"`
	WaistCircumference     float64 `json:"waistCircumference"`
	AbdominalCircumference float64 `json:"abdominalCircumference"`
	ThighsCircumference    float64 `json:"thighsCircumference"`
	HipsCircumference      float64 `json:"hipsCircumference"`
}

// Register creates a new trainee account. Public endpoint, no token attached.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/accounts/register", req, false, nil)
}

// Login exchanges credentials for a token and the account profile.
// Public endpoint, no token attached.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/accounts/login", LoginRequest{Email: email, Password: password}, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetUser fetches the full profile of the account with the given id.
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/accounts/%d", id), nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllUsers fetches the trainee directory. Admin only.
func (c *Client) GetAllUsers(ctx context.Context) ([]domain.DirectoryEntry, error) {
	var entries []domain.DirectoryEntry
	if err := c.do(ctx, http.MethodGet, "/accounts/admin", nil, true, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// UpdateCurrentUser submits a profile update for the authenticated account and
// returns the backend's updated profile.
func (c *Client) UpdateCurrentUser(ctx context.Context, req UpdateProfileRequest) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPut, "/accounts", req, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a trainee account and returns the backend's confirmation
// message. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id int64) (string, error) {
	var msg string
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/accounts/admin/%d", id), nil, true, &msg); err != nil {
		return "", err
	}
	return msg, nil
}
