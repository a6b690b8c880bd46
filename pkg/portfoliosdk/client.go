package portfoliosdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Client talks to the portfolio API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Token returns the current session token, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken installs a session token obtained elsewhere.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Login exchanges admin credentials for a session token and stores it.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/admin/login",
		LoginRequest{Username: username, Password: password}, false)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	c.SetToken(out.Token)
	return &out, nil
}

// SubmitContact posts a public contact-form submission.
func (c *Client) SubmitContact(ctx context.Context, req ContactRequest) (*SubmitContactResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/contact", req, false)
	if err != nil {
		return nil, err
	}

	var out SubmitContactResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContacts returns every submission, newest first.
func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/contacts", nil, true)
	if err != nil {
		return nil, err
	}

	var out []Contact
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteContact removes one submission.
func (c *Client) DeleteContact(ctx context.Context, id string) (*MessageResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/contacts/"+url.PathEscape(id), nil, true)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, false)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, false)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
