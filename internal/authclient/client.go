// Package authclient is the HTTP client for the two-endpoint auth
// service the session store depends on.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"eventwall/internal/models"
	"eventwall/internal/session"
)

// Client talks to the reference auth backend. It implements
// session.AuthService.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the auth service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates an account. A taken email surfaces as a
// DUPLICATE_EMAIL error.
func (c *Client) Register(ctx context.Context, in session.RegisterInput) error {
	status, body, err := c.post(ctx, "/auth/signup", in)
	if err != nil {
		return models.NewInternalError(err)
	}

	switch status {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest:
		return models.NewDuplicateEmailError()
	default:
		return models.NewInternalError(fmt.Errorf("auth service returned status %d: %s", status, body))
	}
}

// Login authenticates and returns the signed token plus the user's
// public fields. Unknown email and wrong password are indistinguishable.
func (c *Client) Login(ctx context.Context, email, password string) (*session.LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	status, body, err := c.post(ctx, "/auth/login", payload)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	switch status {
	case http.StatusOK:
		var result session.LoginResult
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, models.NewInternalError(err)
		}
		return &result, nil
	case http.StatusBadRequest:
		return nil, models.NewInvalidCredentialsError()
	default:
		return nil, models.NewInternalError(fmt.Errorf("auth service returned status %d: %s", status, body))
	}
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (int, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, buf.Bytes(), nil
}
