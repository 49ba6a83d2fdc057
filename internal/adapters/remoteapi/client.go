package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"eventify/internal/domain"
)

// Client calls the remote Eventify API. It implements domain.EventFetcher
// and domain.AuthGateway.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Client for the API rooted at baseURL.
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

var (
	_ domain.EventFetcher = (*Client)(nil)
	_ domain.AuthGateway  = (*Client)(nil)
)

// FetchEvents calls GET /events. Only a 200 response with a JSON array of
// titled records is accepted.
func (c *Client) FetchEvents(ctx context.Context) ([]domain.RemoteEvent, error) {
	resp, err := c.do(ctx, http.MethodGet, "/events", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("events api returned status: %d", resp.StatusCode)
	}

	var records []*eventRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode events response: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("events response is not an array")
	}
	events := make([]domain.RemoteEvent, len(records))
	for i, rec := range records {
		if rec == nil || rec.Title == nil {
			return nil, fmt.Errorf("events response record %d has no title", i)
		}
		events[i] = domain.RemoteEvent{
			Title:       *rec.Title,
			Date:        rec.Date,
			Description: rec.Description,
			Location:    rec.Location,
		}
	}
	return events, nil
}

// eventRecord is one element of the GET /events array. Title is a pointer so
// a missing or null title is told apart from an empty one.
type eventRecord struct {
	Title       *string `json:"title"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login calls POST /auth/login. A 401 maps to domain.ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	resp, err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrInvalidCredentials
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("login api returned status: %d", resp.StatusCode)
	}

	var data domain.LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}
	if data.User == nil || data.Token == "" {
		return nil, fmt.Errorf("login response is missing user or token")
	}
	return &data, nil
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup calls POST /auth/signup. Any 2xx is success; the body is ignored.
func (c *Client) Signup(ctx context.Context, username, email, password string) error {
	resp, err := c.do(ctx, http.MethodPost, "/auth/signup", signupRequest{Username: username, Email: email, Password: password})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("signup api returned status: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	return resp, nil
}
