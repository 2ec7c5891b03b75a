package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"taskdeck/internal/domain"
)

// ErrSessionExpired is returned when the server rejects the stored token.
// The client clears the token store before returning it, so the next command
// starts logged out — mirroring the browser client dropping local storage
// and bouncing to the login page on a 403.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError is a non-2xx response with the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Client talks to the taskdeck API, attaching the stored bearer token to
// every authenticated request.
type Client struct {
	baseURL string
	http    *http.Client
	store   TokenStore
}

func New(baseURL string, store TokenStore) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		store:   store,
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates an account and stores the issued token.
func (c *Client) Register(ctx context.Context, username, password string) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/register", credentials{username, password}, &resp, false); err != nil {
		return err
	}
	return c.store.Save(resp.Token)
}

// Login authenticates and stores the issued token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/login", credentials{username, password}, &resp, false); err != nil {
		return err
	}
	return c.store.Save(resp.Token)
}

// Logout drops the stored token. Purely local; tokens are not revocable.
func (c *Client) Logout() error {
	return c.store.Clear()
}

// LoggedIn reports whether a token is stored. It may still be expired.
func (c *Client) LoggedIn() bool {
	token, err := c.store.Load()
	return err == nil && token != ""
}

func (c *Client) Tasks(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks, true); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, title string) (*domain.Task, error) {
	var task domain.Task
	body := map[string]string{"title": title}
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &task, true); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id int64, upd domain.TaskUpdate) (*domain.Task, error) {
	var task domain.Task
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), upd, &task, true); err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil, true)
}

// Me returns the authenticated identity.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.store.Load()
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		// Invalid or expired token: drop the session.
		_ = c.store.Clear()
		return ErrSessionExpired
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
