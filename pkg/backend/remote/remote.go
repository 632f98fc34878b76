// Package remote is the HTTP client for the real pigsty backend. One refresh
// fetches the five collections concurrently as a group; if any request fails
// the whole snapshot is discarded, never partially applied.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"barnsight.xyz/pigsty-monitor-service/pkg/backend"
	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	mu    sync.RWMutex
	token string
}

var _ backend.Source = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken installs the bearer token attached to every request.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken drops the session, e.g. after repeated refresh failures.
func (c *Client) ClearToken() {
	c.SetToken("")
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", backend.ErrNotFound, method, path)
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s %s", backend.ErrInvalidCredentials, method, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(out)
}

// FetchSnapshot pulls users, pigsties, devices, readings and alerts as one
// group. Any failure fails the refresh; the caller must not apply anything.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.Snapshot, error) {
	snap := &models.Snapshot{FetchedAt: time.Now()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/admin/users", nil, &snap.Users) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/pigsties", nil, &snap.Pigsties) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/devices", nil, &snap.Devices) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/data/latest", nil, &snap.Readings) })
	g.Go(func() error { return c.do(gctx, http.MethodGet, "/api/warnings/latest", nil, &snap.Alerts) })

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("refresh failed: %w", err)
	}
	return snap, nil
}

func (c *Client) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	payload := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &resp); err != nil {
		return nil, err
	}
	c.SetToken(resp.Token)
	return &resp.User, nil
}

func (c *Client) CreateUser(ctx context.Context, input models.User) (*models.User, error) {
	payload := map[string]string{
		"name":     input.Name,
		"username": input.Username,
		"password": input.Password,
	}
	var user models.User
	if err := c.do(ctx, http.MethodPost, "/api/admin/users", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", id), nil, nil)
}

func (c *Client) CreatePigsty(ctx context.Context, input models.Pigsty) (*models.Pigsty, error) {
	var pigsty models.Pigsty
	if err := c.do(ctx, http.MethodPost, "/api/pigsties", input, &pigsty); err != nil {
		return nil, err
	}
	return &pigsty, nil
}

func (c *Client) UpdatePigsty(ctx context.Context, id int64, input models.Pigsty) (*models.Pigsty, error) {
	var pigsty models.Pigsty
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/pigsties/%d", id), input, &pigsty); err != nil {
		return nil, err
	}
	return &pigsty, nil
}

func (c *Client) UpdatePigstyThresholds(ctx context.Context, id int64, thresholds map[models.MetricKind]models.ThresholdBand) (*models.Pigsty, error) {
	var pigsty models.Pigsty
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/pigsties/%d/thresholds", id), thresholds, &pigsty); err != nil {
		return nil, err
	}
	return &pigsty, nil
}

func (c *Client) DeletePigsty(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/pigsties/%d", id), nil, nil)
}

func (c *Client) CreateDevice(ctx context.Context, input models.Device) (*models.Device, error) {
	var device models.Device
	if err := c.do(ctx, http.MethodPost, "/api/devices", input, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

func (c *Client) ToggleDevice(ctx context.Context, id int64) (*models.Device, error) {
	var device models.Device
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/devices/%d/toggle", id), nil, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

func (c *Client) DeleteDevice(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/devices/%d", id), nil, nil)
}

func (c *Client) AcknowledgeAlert(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/warnings/acknowledge/%d", id), nil, nil)
}
