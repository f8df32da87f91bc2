package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/algharieb/ghareeb-app/internal/domain"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
)

// Client talks to the remote authentication endpoints. Credentials
// (cookies) live on the supplied http.Client's jar; this type only shapes
// the payloads.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a Client for the given base URL. A nil httpClient falls back
// to http.DefaultClient.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type logoutRequest struct {
	UserID types.ID `json:"userId"`
}

// Login authenticates and returns the server's user record.
func (c *Client) Login(ctx context.Context, username, password string) (types.User, error) {
	return c.postUser(ctx, "/login", loginRequest{Username: username, Password: password})
}

// Logout tells the server the user is gone. The caller treats failure as
// advisory.
func (c *Client) Logout(ctx context.Context, userID types.ID) error {
	_, err := c.post(ctx, "/logout", logoutRequest{UserID: userID})
	return err
}

// Register creates an account and returns the server's user record.
func (c *Client) Register(ctx context.Context, user types.User) (types.User, error) {
	return c.postUser(ctx, "/register", user)
}

// postUser posts and decodes a user from the response, accepting both the
// wrapped {"user": {...}} shape and a bare user object.
func (c *Client) postUser(ctx context.Context, path string, in any) (types.User, error) {
	body, err := c.post(ctx, path, in)
	if err != nil {
		return types.User{}, err
	}
	var wrapped struct {
		User *types.User `json:"user"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.User != nil {
		return *wrapped.User, nil
	}
	var user types.User
	if err := json.Unmarshal(body, &user); err != nil {
		return types.User{}, fmt.Errorf("auth post %s: undecodable user payload: %w", path, err)
	}
	return user, nil
}

func (c *Client) post(ctx context.Context, path string, in any) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("auth post %s: %s", path, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Compile-time assertion that Client implements domain.AuthClient.
var _ domain.AuthClient = (*Client)(nil)
