package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/nikhilkumar92976/FOOD-INSTA/feed"
)

// Client talks to the REST API. It satisfies feed.Source.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// sessionCookie is the cookie the API sets on register and login.
const sessionCookie = "token"

// New keeps a cookie jar so a login carries over to later calls on the same Client.
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
		},
	}
}

// WithToken sends token as a bearer credential on every request.
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Token is the current session token, from WithToken or the last register/login.
func (c *Client) Token() string { return c.token }

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, "", nil)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return c.do(ctx, http.MethodPost, endpoint, "application/json", bytes.NewReader(raw))
}

func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http %s: %w", strings.ToLower(method), err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(data, &msg)
		log.Printf("api error: %s %s status %d", method, endpoint, resp.StatusCode)
		return nil, &StatusError{Status: resp.StatusCode, Message: msg.Message}
	}
	return data, nil
}

// syncToken copies the session cookie from the jar, so the token can be
// handed to a later process as a bearer credential.
func (c *Client) syncToken() {
	u, err := url.Parse(c.baseURL)
	if err != nil || c.httpClient.Jar == nil {
		return
	}
	c.token = ""
	for _, ck := range c.httpClient.Jar.Cookies(u) {
		if ck.Name == sessionCookie {
			c.token = ck.Value
			return
		}
	}
}

// decodeItems accepts either a bare JSON array or an object with a "food" array.
func decodeItems(body []byte) ([]feed.Item, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []feed.Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", feed.ErrUnexpectedShape, err)
		}
		return items, nil
	}

	var envelope struct {
		Food json.RawMessage `json:"food"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", feed.ErrUnexpectedShape, err)
	}
	food := bytes.TrimSpace(envelope.Food)
	if len(food) == 0 || food[0] != '[' {
		return nil, feed.ErrUnexpectedShape
	}
	var items []feed.Item
	if err := json.Unmarshal(food, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", feed.ErrUnexpectedShape, err)
	}
	return items, nil
}

// ListFood fetches the whole public catalog.
func (c *Client) ListFood(ctx context.Context) ([]feed.Item, error) {
	body, err := c.get(ctx, "/api/food")
	if err != nil {
		return nil, err
	}
	return decodeItems(body)
}

// ListPartnerFood fetches the items owned by the partner behind the token.
func (c *Client) ListPartnerFood(ctx context.Context) ([]feed.Item, error) {
	if c.token == "" {
		return nil, errors.New("partner token required")
	}
	body, err := c.get(ctx, "/api/food/getfood")
	if err != nil {
		return nil, err
	}
	return decodeItems(body)
}

func (c *Client) GetFood(ctx context.Context, id string) (*feed.Item, error) {
	body, err := c.get(ctx, "/api/food/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Food *feed.Item `json:"food"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Food == nil {
		return nil, feed.ErrUnexpectedShape
	}
	return envelope.Food, nil
}

// PartnerSource adapts ListPartnerFood to feed.Source.
type PartnerSource struct{ *Client }

func (p PartnerSource) ListFood(ctx context.Context) ([]feed.Item, error) {
	return p.Client.ListPartnerFood(ctx)
}
