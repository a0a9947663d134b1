package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nikhilkumar92976/FOOD-INSTA/feed"
)

// Account is a user or food partner as the API returns it. Users carry
// FullName, partners carry Name, Contact and Address.
type Account struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullname,omitempty"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// DisplayName is FullName for users and Name for partners.
func (a *Account) DisplayName() string {
	if a.FullName != "" {
		return a.FullName
	}
	return a.Name
}

type PartnerRegistration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Contact  string `json:"contact"`
	Address  string `json:"address"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func decodeAccount(body []byte) (*Account, error) {
	var envelope struct {
		User *Account `json:"user"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.User == nil {
		return nil, fmt.Errorf("%w: no user in response", feed.ErrUnexpectedShape)
	}
	return envelope.User, nil
}

// session posts an auth request and keeps the token the API sets.
func (c *Client) session(ctx context.Context, endpoint string, payload any) (*Account, error) {
	body, err := c.postJSON(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}
	c.syncToken()
	return decodeAccount(body)
}

func (c *Client) RegisterUser(ctx context.Context, fullName, email, password string) (*Account, error) {
	return c.session(ctx, "/api/auth/register", map[string]string{
		"fullname": fullName,
		"email":    email,
		"password": password,
	})
}

func (c *Client) LoginUser(ctx context.Context, email, password string) (*Account, error) {
	return c.session(ctx, "/api/auth/login", credentials{Email: email, Password: password})
}

func (c *Client) RegisterFoodPartner(ctx context.Context, reg PartnerRegistration) (*Account, error) {
	return c.session(ctx, "/api/auth/register/foodpatner", reg)
}

func (c *Client) LoginFoodPartner(ctx context.Context, email, password string) (*Account, error) {
	return c.session(ctx, "/api/auth/login/foodpatner", credentials{Email: email, Password: password})
}

func (c *Client) UserProfile(ctx context.Context) (*Account, error) {
	body, err := c.get(ctx, "/api/auth/profile")
	if err != nil {
		return nil, err
	}
	return decodeAccount(body)
}

func (c *Client) FoodPartnerProfile(ctx context.Context) (*Account, error) {
	body, err := c.get(ctx, "/api/auth/profile/foodpatner")
	if err != nil {
		return nil, err
	}
	return decodeAccount(body)
}

// Logout asks the API to clear the cookie and forgets the token locally.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.get(ctx, "/api/auth/logout"); err != nil {
		return err
	}
	c.token = ""
	return nil
}
